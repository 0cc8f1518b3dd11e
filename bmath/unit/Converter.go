package unit

import (
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

//Converter converts values between the units of the same category.
//
//A converter never modifies its tables, so it may be used
//from several goroutines at once.
type Converter struct {
	tables []Table
	logger logr.Logger
}

//Option configures a converter created by NewConverter
type Option func(*Converter)

//WithLogger sets the logger used for diagnostic messages
func WithLogger(logger logr.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

//WithTables replaces the default tables.
//
//The order of the tables is the order in which an input unit is looked up.
func WithTables(tables ...Table) Option {
	return func(c *Converter) {
		c.tables = append([]Table(nil), tables...)
	}
}

//DefaultTables returns the built-in tables in the lookup order:
//mass, length, volume, force, pressure, energy, power, moles
func DefaultTables() []Table {
	return []Table{
		MassTable,
		LengthTable,
		VolumeTable,
		ForceTable,
		PressureTable,
		EnergyTable,
		PowerTable,
		MolesTable,
	}
}

//NewConverter creates a converter.
//
//The function returns a error if a table is empty, has a coefficient
//which is not a finite positive number, or if a unit name is listed
//twice in one table or in two different tables.
func NewConverter(options ...Option) (*Converter, error) {
	c := &Converter{
		tables: DefaultTables(),
		logger: klog.Background(),
	}
	for _, option := range options {
		option(c)
	}
	if len(c.tables) == 0 {
		return nil, errors.Wrap(ErrInvalidTable, "no tables")
	}

	owner := make(map[string]Category)
	categories := make(map[Category]bool, len(c.tables))
	for _, t := range c.tables {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if categories[t.category] {
			return nil, errors.Wrapf(ErrInvalidTable, "%s: category listed twice", t.category)
		}
		categories[t.category] = true
		for _, u := range t.units {
			if other, ok := owner[u]; ok {
				return nil, errors.Wrapf(ErrInvalidTable, "unit %q is listed in %s and %s", u, other, t.category)
			}
			owner[u] = t.category
		}
	}
	return c, nil
}

//MustCreateConverter creates the converter but panics instead of returned a error
func MustCreateConverter(options ...Option) *Converter {
	c, err := NewConverter(options...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Converter) find(name string) (Table, bool) {
	for _, t := range c.tables {
		if t.Contains(name) {
			return t, true
		}
	}
	return Table{}, false
}

//Convert converts value expressed in unitIn into unitOut.
//
//The function returns ErrUnsupportedUnit if unitIn is not listed
//in any table and ErrInvalidUnitOutput if unitOut is not a unit of
//the same category as unitIn.
func (c *Converter) Convert(value float64, unitIn, unitOut string) (float64, error) {
	t, ok := c.find(unitIn)
	if !ok {
		c.logger.Info("Unit not supported", "unit", unitIn)
		return 0, errors.Wrapf(ErrUnsupportedUnit, "%q", unitIn)
	}
	ratio, err := t.Ratio(unitIn, unitOut)
	if err != nil {
		return 0, err
	}
	return value * ratio, nil
}

//CategoryOf returns the category of the first table which lists the unit
func (c *Converter) CategoryOf(name string) (Category, error) {
	t, ok := c.find(name)
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedUnit, "%q", name)
	}
	return t.category, nil
}

//Units returns the names of the units of the category in table order
func (c *Converter) Units(category Category) ([]string, error) {
	for _, t := range c.tables {
		if t.category == category {
			return t.Units(), nil
		}
	}
	return nil, errors.Wrapf(ErrUnsupportedUnit, "no %s table", category)
}

//Categories returns the categories in the lookup order
func (c *Converter) Categories() []Category {
	categories := make([]Category, 0, len(c.tables))
	for _, t := range c.tables {
		categories = append(categories, t.category)
	}
	return categories
}

var defaultConverter = MustCreateConverter()

//Convert converts value from unitIn to unitOut using the built-in tables.
//
//See Converter.Convert
func Convert(value float64, unitIn, unitOut string) (float64, error) {
	return defaultConverter.Convert(value, unitIn, unitOut)
}

//CategoryOf returns the category of the unit in the built-in tables
func CategoryOf(name string) (Category, error) {
	return defaultConverter.CategoryOf(name)
}

//Units returns the built-in unit names of the category
func Units(category Category) ([]string, error) {
	return defaultConverter.Units(category)
}
