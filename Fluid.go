package go_engunits

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/gehtsoft-usa/go_engunits/bmath/unit"
)

//Fluid describes the critical constants of a pure substance
//used by the generalized correlations
type Fluid struct {
	name                string
	criticalTemperature float64
	criticalPressure    unit.Quantity
	acentricFactor      float64
}

//CreateFluid creates a fluid.
//
//tc is the critical temperature in Kelvin, pc is the critical
//pressure in any pressure unit and w is the acentric factor.
func CreateFluid(name string, tc float64, pc unit.Quantity, w float64) (Fluid, error) {
	if !(tc > 0) || math.IsInf(tc, 0) {
		return Fluid{}, errors.Wrapf(ErrInvalidFluid, "%s: critical temperature must be positive, got %v", name, tc)
	}
	if pc.Category() != unit.CategoryPressure {
		return Fluid{}, errors.Wrapf(ErrInvalidFluid, "%s: %s is not a pressure", name, pc)
	}
	if !(pc.In(pc.Units()) > 0) {
		return Fluid{}, errors.Wrapf(ErrInvalidFluid, "%s: critical pressure must be positive, got %s", name, pc)
	}
	return Fluid{
		name:                name,
		criticalTemperature: tc,
		criticalPressure:    pc,
		acentricFactor:      w,
	}, nil
}

//Name returns the name of the fluid
func (f Fluid) Name() string {
	return f.name
}

//CriticalTemperature returns the critical temperature in Kelvin
func (f Fluid) CriticalTemperature() float64 {
	return f.criticalTemperature
}

//CriticalPressure returns the critical pressure
func (f Fluid) CriticalPressure() unit.Quantity {
	return f.criticalPressure
}

//AcentricFactor returns the acentric factor
func (f Fluid) AcentricFactor() float64 {
	return f.acentricFactor
}

func (f Fluid) String() string {
	return fmt.Sprintf("%s:Tc:%gK,Pc:%s,w:%g", f.name, f.criticalTemperature, f.criticalPressure, f.acentricFactor)
}

//ReducedTemperature returns the temperature t (Kelvin) divided by the critical temperature
func (f Fluid) ReducedTemperature(t float64) float64 {
	return t / f.criticalTemperature
}

//ReducedPressure returns the pressure divided by the critical pressure
func (f Fluid) ReducedPressure(p unit.Quantity) (float64, error) {
	pc, err := f.criticalPressure.Value(p.Units())
	if err != nil {
		return 0, err
	}
	return p.In(p.Units()) / pc, nil
}

//Compressibility returns the compressibility factor at temperature t (Kelvin)
//and pressure p estimated by VirialPitzer
func (f Fluid) Compressibility(t float64, p unit.Quantity) (float64, error) {
	pr, err := f.ReducedPressure(p)
	if err != nil {
		return 0, err
	}
	return VirialPitzer(f.ReducedTemperature(t), pr, f.acentricFactor)
}

//MolarVolume returns the molar volume in m3/mol at temperature t (Kelvin)
//and pressure p
func (f Fluid) MolarVolume(t float64, p unit.Quantity) (float64, error) {
	z, err := f.Compressibility(t, p)
	if err != nil {
		return 0, err
	}
	pa, err := p.Value(unit.PressurePascal)
	if err != nil {
		return 0, err
	}
	r, err := GetR("Pa")
	if err != nil {
		return 0, err
	}
	return divide(z*r*t, pa)
}
