package go_engunits

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gehtsoft-usa/go_engunits/bmath/unit"
)

//GasConstant is the ideal gas constant expressed in one unit system
type GasConstant struct {
	//Units describes the physical units of the value, e.g. m3-Pa/(mol-K)
	Units string
	//Label is the name GetR accepts for this entry
	Label string
	Value float64
}

//GasConstantTable is an ordered list of the gas constant values
type GasConstantTable []GasConstant

var rGas = GasConstantTable{
	{"m3-Pa/(mol-K)", "Pa", 8.314},
	{"L-bar/(mol-K)", "bar", 0.08314},
	{"L-atm/(mol-K)", "atm", 0.08206},
	{"L-mmHg/(mol-K)", "mmHg", 62.36},
	{"ft3-atm/(lbmol-R)", "atmR", 0.7302},
	{"ft3-psia/(lbmol-R)", "psi", 10.73},
	{"J/(mol-K)", "J", 8.314},
	{"cal/(mol-K)", "cal", 1.987},
	{"Btu/(lb-mol-R)", "Btu", 1.987},
}

//RGas returns the gas constant table
func RGas() GasConstantTable {
	t := make(GasConstantTable, len(rGas))
	copy(t, rGas)
	return t
}

//Get returns the value of the entry with the label
func (t GasConstantTable) Get(label string) (float64, error) {
	for _, r := range t {
		if r.Label == label {
			return r.Value, nil
		}
	}
	return 0, errors.Wrapf(unit.ErrUnsupportedUnit, "gas constant in %q", label)
}

func (t GasConstantTable) String() string {
	var b strings.Builder
	b.WriteString("\nR Gas Constant:\n\n")
	fmt.Fprintf(&b, "%-20s%-12s%s\n", "Units", "Accessor", "Value")
	b.WriteString(strings.Repeat("-", 38))
	for _, r := range t {
		fmt.Fprintf(&b, "\n%-20s%-12s%v", r.Units, r.Label, r.Value)
	}
	return b.String()
}

//GetR returns the ideal gas constant in the unit system with the label.
//
//Possible labels are Pa, bar, atm, mmHg, atmR, psi, J, cal and Btu.
//Any other label is reported and makes the function return
//a error matching unit.ErrUnsupportedUnit.
func GetR(units string) (float64, error) {
	r, err := rGas.Get(units)
	if err != nil {
		klog.InfoS("Not a valid unit for GetR", "units", units)
		return 0, err
	}
	return r, nil
}
