package unit

//Energy unit names
const (
	EnergyJoule        = "J"
	EnergyNewtonMeter  = "N-m"
	EnergyErg          = "ergs"
	EnergyDyneCm       = "dyne-cm"
	EnergyKilowattHour = "kW-h"
	EnergyCalorie      = "cal"
	EnergyFootPound    = "ft-lbf"
	EnergyBtu          = "Btu"
)

//EnergyTable lists the energy units relative to one joule
var EnergyTable = NewTable(CategoryEnergy,
	Coefficient{EnergyJoule, 1},
	Coefficient{EnergyNewtonMeter, 1},
	Coefficient{EnergyErg, 1e7},
	Coefficient{EnergyDyneCm, 1e7},
	Coefficient{EnergyKilowattHour, 2.778e-7},
	Coefficient{EnergyCalorie, 0.23901},
	Coefficient{EnergyFootPound, 0.7376},
	Coefficient{EnergyBtu, 9.486e-4},
)
