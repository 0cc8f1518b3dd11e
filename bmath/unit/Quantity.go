package unit

import "fmt"

//Quantity keeps a value together with the unit it is expressed in
type Quantity struct {
	value    float64
	units    string
	category Category
}

//CreateQuantity creates a quantity.
//
//units may be any unit listed in the built-in tables,
//e.g. unit.PressureAtm or "lbm".
func CreateQuantity(value float64, units string) (Quantity, error) {
	category, err := CategoryOf(units)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: value, units: units, category: category}, nil
}

//MustCreateQuantity creates the quantity but panics instead of returned a error
func MustCreateQuantity(value float64, units string) Quantity {
	v, err := CreateQuantity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the quantity in the specified units.
//
//The method returns a error in case the units are not of
//the quantity category.
func (v Quantity) Value(units string) (float64, error) {
	if units == v.units {
		return v.value, nil
	}
	return Convert(v.value, v.units, units)
}

//Convert converts the quantity into the specified units
func (v Quantity) Convert(units string) (Quantity, error) {
	x, err := v.Value(units)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: x, units: units, category: v.category}, nil
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Quantity) In(units string) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

//Units return the units in which the value is measured
func (v Quantity) Units() string {
	return v.units
}

//Category returns the category of the quantity units
func (v Quantity) Category() Category {
	return v.category
}

func (v Quantity) String() string {
	return fmt.Sprintf("%g %s", v.value, v.units)
}
