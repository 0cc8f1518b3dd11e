package unit

//Power unit names
const (
	PowerWatt               = "W"
	PowerJoulePerSecond     = "J/s"
	PowerCaloriePerSecond   = "cal/s"
	PowerFootPoundPerSecond = "ft-lbf/s"
	PowerBtuPerSecond       = "Btu/s"
	PowerHorsepower         = "hp"
)

//PowerTable lists the power units relative to one watt
var PowerTable = NewTable(CategoryPower,
	Coefficient{PowerWatt, 1},
	Coefficient{PowerJoulePerSecond, 1},
	Coefficient{PowerCaloriePerSecond, 0.23901},
	Coefficient{PowerFootPoundPerSecond, 0.7376},
	Coefficient{PowerBtuPerSecond, 9.486e-4},
	Coefficient{PowerHorsepower, 1.341e-3},
)
