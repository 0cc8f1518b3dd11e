package unit

import "fmt"

//Category identifies the physical quantity a unit table describes
type Category byte

//CategoryMass is the category of the mass units
const CategoryMass Category = 1

//CategoryLength is the category of the length units
const CategoryLength Category = 2

//CategoryVolume is the category of the volume units
const CategoryVolume Category = 3

//CategoryForce is the category of the force units
const CategoryForce Category = 4

//CategoryPressure is the category of the pressure units
const CategoryPressure Category = 5

//CategoryEnergy is the category of the energy units
const CategoryEnergy Category = 6

//CategoryPower is the category of the power units
const CategoryPower Category = 7

//CategoryMoles is the category of the amount of substance units
const CategoryMoles Category = 8

func (c Category) String() string {
	switch c {
	case CategoryMass:
		return "mass"
	case CategoryLength:
		return "length"
	case CategoryVolume:
		return "volume"
	case CategoryForce:
		return "force"
	case CategoryPressure:
		return "pressure"
	case CategoryEnergy:
		return "energy"
	case CategoryPower:
		return "power"
	case CategoryMoles:
		return "moles"
	default:
		return fmt.Sprintf("Category(%d)", byte(c))
	}
}
