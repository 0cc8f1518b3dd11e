package unit

import (
	"math"

	"github.com/pkg/errors"
)

//Coefficient is a unit name with its value relative to the other units of the same table
type Coefficient struct {
	Unit  string
	Value float64
}

//Table is an ordered set of coefficients for one category.
//
//Ratio of two coefficients is the ratio of one unit to the other,
//e.g. coefficient of g divided by coefficient of kg is 1000.
//A table is never modified after it is created.
type Table struct {
	category  Category
	units     []string
	values    map[string]float64
	duplicate string
}

//NewTable creates a table of the category with the coefficients in the given order.
//
//A repeated unit keeps its first coefficient; NewConverter rejects such tables.
func NewTable(category Category, coefficients ...Coefficient) Table {
	t := Table{
		category: category,
		units:    make([]string, 0, len(coefficients)),
		values:   make(map[string]float64, len(coefficients)),
	}
	for _, c := range coefficients {
		if _, ok := t.values[c.Unit]; ok {
			if t.duplicate == "" {
				t.duplicate = c.Unit
			}
			continue
		}
		t.units = append(t.units, c.Unit)
		t.values[c.Unit] = c.Value
	}
	return t
}

//Category returns the category of the table
func (t Table) Category() Category {
	return t.category
}

//Units returns the unit names in table order
func (t Table) Units() []string {
	units := make([]string, len(t.units))
	copy(units, t.units)
	return units
}

//Coefficients returns a copy of the table
func (t Table) Coefficients() []Coefficient {
	coefficients := make([]Coefficient, 0, len(t.units))
	for _, u := range t.units {
		coefficients = append(coefficients, Coefficient{Unit: u, Value: t.values[u]})
	}
	return coefficients
}

//Contains checks whether the unit is listed in the table
func (t Table) Contains(unit string) bool {
	_, ok := t.values[unit]
	return ok
}

//Ratio returns how many unitOut there are in one unitIn.
//
//This is the coefficient of unitOut after the table is re-based
//so that unitIn has the coefficient of 1.
func (t Table) Ratio(unitIn, unitOut string) (float64, error) {
	in, ok := t.values[unitIn]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedUnit, "%s: %q", t.category, unitIn)
	}
	out, ok := t.values[unitOut]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidUnitOutput, "%q is not a %s unit", unitOut, t.category)
	}
	return out / in, nil
}

func (t Table) validate() error {
	if len(t.units) == 0 {
		return errors.Wrapf(ErrInvalidTable, "%s: table is empty", t.category)
	}
	if t.duplicate != "" {
		return errors.Wrapf(ErrInvalidTable, "%s: unit %q listed twice", t.category, t.duplicate)
	}
	for _, u := range t.units {
		v := t.values[u]
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return errors.Wrapf(ErrInvalidTable, "%s: coefficient of %q must be finite and positive, got %v", t.category, u, v)
		}
	}
	return nil
}
