package unit

//Pressure unit names
const (
	PressureAtm          = "atm"
	PressurePascal       = "Pa"
	PressureKiloPascal   = "kPa"
	PressureBar          = "bar"
	PressureDynePerCm2   = "dyne/cm2"
	PressureMmHg         = "mmHg"
	PressureMeterOfWater = "mH2O"
	PressureLbfPerIn2    = "lbf/in2"
	PressurePSI          = "psi"
	PressureFootOfWater  = "ftH2O"
	PressureInHg         = "inHg"
)

//PressureTable lists the pressure units relative to one standard atmosphere.
//
//There is no torr entry; use mmHg.
var PressureTable = NewTable(CategoryPressure,
	Coefficient{PressureAtm, 1},
	Coefficient{PressurePascal, 1.01325e5},
	Coefficient{PressureKiloPascal, 101.325},
	Coefficient{PressureBar, 1.01325},
	Coefficient{PressureDynePerCm2, 1.01325e6},
	Coefficient{PressureMmHg, 760},
	Coefficient{PressureMeterOfWater, 10.333},
	Coefficient{PressureLbfPerIn2, 14.696},
	Coefficient{PressurePSI, 14.696},
	Coefficient{PressureFootOfWater, 33.9},
	Coefficient{PressureInHg, 29.921},
)
