package unit

//MolesMole is the name of the gram-mole unit
const MolesMole = "mol"

//MolesPoundMole is the name of the pound-mole unit
const MolesPoundMole = "lbmol"

//MolesTable lists the amount of substance units relative to one pound-mole
var MolesTable = NewTable(CategoryMoles,
	Coefficient{MolesMole, 453.59237},
	Coefficient{MolesPoundMole, 1},
)
