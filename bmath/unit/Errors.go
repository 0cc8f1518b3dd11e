package unit

import "github.com/pkg/errors"

//ErrUnsupportedUnit is returned when a unit name is not found in any table
var ErrUnsupportedUnit = errors.New("unit not supported")

//ErrInvalidUnitOutput is returned when the output unit does not belong
//to the category of the input unit
var ErrInvalidUnitOutput = errors.New("invalid output unit")

//ErrInvalidTable is returned by NewConverter when a table cannot be used
var ErrInvalidTable = errors.New("invalid unit table")
