package unit

//Length unit names
const (
	LengthMeter      = "m"
	LengthCentimeter = "cm"
	LengthMillimeter = "mm"
	LengthMicrometer = "mum"
	LengthAngstrom   = "A"
	LengthInch       = "in"
	LengthFoot       = "ft"
	LengthYard       = "yd"
	LengthMile       = "mile"
)

//LengthTable lists the length units relative to one meter
var LengthTable = NewTable(CategoryLength,
	Coefficient{LengthMeter, 1},
	Coefficient{LengthCentimeter, 100},
	Coefficient{LengthMillimeter, 1000},
	Coefficient{LengthMicrometer, 1e6},
	Coefficient{LengthAngstrom, 1e10},
	Coefficient{LengthInch, 39.37},
	Coefficient{LengthFoot, 3.2808},
	Coefficient{LengthYard, 1.0936},
	Coefficient{LengthMile, 0.0006214},
)
