// Package country defines the country record and loads the static dataset the
// browser filters over.
package country

import (
	"fmt"
	"strconv"
)

// Record is one dataset entry. Only Name and Region take part in filtering.
type Record struct {
	Name       string `json:"name" yaml:"name" validate:"required,notblank"`
	Alpha3Code string `json:"alpha3Code,omitempty" yaml:"alpha3Code,omitempty" validate:"omitempty,alpha3"`
	Capital    string `json:"capital" yaml:"capital"`
	Region     string `json:"region" yaml:"region" validate:"required,notblank"`
	Subregion  string `json:"subregion,omitempty" yaml:"subregion,omitempty"`
	Population int64  `json:"population" yaml:"population" validate:"gte=0"`
	NativeName string `json:"nativeName,omitempty" yaml:"nativeName,omitempty"`
}

// Label returns the display name with the alpha-3 code appended when known.
func (r Record) Label() string {
	if r.Alpha3Code == "" {
		return r.Name
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.Alpha3Code)
}

// CapitalOrPlaceholder returns the capital, or a dash for territories without one.
func (r Record) CapitalOrPlaceholder() string {
	if r.Capital == "" {
		return "—"
	}
	return r.Capital
}

// FormatPopulation renders a population with thousands separators.
func FormatPopulation(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	out := make([]byte, 0, len(sign)+len(digits)+len(digits)/3)
	out = append(out, sign...)
	out = append(out, digits[:lead]...)
	for i := lead; i < len(digits); i += 3 {
		out = append(out, ',')
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
