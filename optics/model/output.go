package model

import (
	"fmt"
	"strings"
)

// Output names the optical quantity a model or data set yields.
type Output int

const (
	OutputN Output = iota + 1
	OutputK
	OutputNK
	OutputEpsR
	OutputEpsI
	OutputEps
)

var outputNames = map[Output]string{
	OutputN:    "n",
	OutputK:    "k",
	OutputNK:   "nk",
	OutputEpsR: "eps_r",
	OutputEpsI: "eps_i",
	OutputEps:  "eps",
}

// String returns the output name.
func (o Output) String() string {
	if name, ok := outputNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Output(%d)", int(o))
}

// IsComplex reports whether the output is a complex quantity.
func (o Output) IsComplex() bool {
	return o == OutputNK || o == OutputEps
}

// ParseOutput parses names such as "n", "nk", "eps_r" or "permittivity".
func ParseOutput(s string) (Output, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "n":
		return OutputN, nil
	case "k":
		return OutputK, nil
	case "nk", "n+ik", "refractive_index":
		return OutputNK, nil
	case "eps_r", "epsr", "e1", "eps1":
		return OutputEpsR, nil
	case "eps_i", "epsi", "e2", "eps2":
		return OutputEpsI, nil
	case "eps", "permittivity", "epsilon":
		return OutputEps, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutput, s)
}
