package unit

//Force unit names
const (
	ForceNewton            = "N"
	ForceKilogramMeterPerS = "kg-m/s2"
	ForceDyne              = "dyne"
	ForceGramMeterPerS     = "g-m/s2"
	ForcePound             = "lbf"
	ForcePoundal           = "lbm-ft/s2"
)

var gravityFtPerS2, lbfPerNewton float64 = 32.174, 0.22481

//ForceTable lists the force units relative to one newton
var ForceTable = NewTable(CategoryForce,
	Coefficient{ForceNewton, 1},
	Coefficient{ForceKilogramMeterPerS, 1},
	Coefficient{ForceDyne, 1e5},
	Coefficient{ForceGramMeterPerS, 1e5},
	Coefficient{ForcePound, lbfPerNewton},
	Coefficient{ForcePoundal, gravityFtPerS2 * lbfPerNewton},
)
