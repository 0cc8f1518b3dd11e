package go_engunits

import "math"

//VirialPitzer estimates the compressibility factor by the truncated virial
//equation with the Pitzer correlation for the second virial coefficient.
//
//tr and pr are the reduced temperature and pressure, w is the acentric factor.
//Arguments are not validated: zero tr causes ErrDivisionByZero and a
//negative tr gives NaN.
func VirialPitzer(tr, pr, w float64) (float64, error) {
	b0, err := divide(0.422, math.Pow(tr, 1.6))
	if err != nil {
		return 0, err
	}
	b0 = 0.083 - b0

	b1, err := divide(0.172, math.Pow(tr, 4.2))
	if err != nil {
		return 0, err
	}
	b1 = 0.139 - b1

	t0, err := divide(b0*pr, tr)
	if err != nil {
		return 0, err
	}
	t1, err := divide(w*b1*pr, tr)
	if err != nil {
		return 0, err
	}
	return 1 + t0 + t1, nil
}
