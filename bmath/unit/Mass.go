package unit

//MassKilogram is the name of the kilogram unit
const MassKilogram = "kg"

//MassGram is the name of the gram unit
const MassGram = "g"

//MassMetricTon is the name of the metric ton (1000 kg) unit
const MassMetricTon = "metric ton"

//MassPound is the name of the pound-mass unit
const MassPound = "lbm"

//MassOunce is the name of the ounce unit
const MassOunce = "oz"

//MassShortTon is the name of the short ton (2000 lbm) unit
const MassShortTon = "ton"

//typed operands, the short ton coefficient is a float64 division
var shortTonPerLbm, kgPerLbm float64 = 5e-4, 0.453593

//MassTable lists the mass units relative to one kilogram
var MassTable = NewTable(CategoryMass,
	Coefficient{MassKilogram, 1},
	Coefficient{MassGram, 1000},
	Coefficient{MassMetricTon, 0.001},
	Coefficient{MassPound, 2.20462},
	Coefficient{MassOunce, 35.27392},
	Coefficient{MassShortTon, shortTonPerLbm / kgPerLbm},
)
