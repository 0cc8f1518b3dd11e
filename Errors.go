package go_engunits

import "github.com/pkg/errors"

//ErrDivisionByZero is returned when a formula divides by zero
var ErrDivisionByZero = errors.New("division by zero")

//ErrInvalidFluid is returned by CreateFluid for unusable critical constants
var ErrInvalidFluid = errors.New("invalid fluid")

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%v / %v", a, b)
	}
	return a / b, nil
}
