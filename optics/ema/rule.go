package ema

import (
	"fmt"
	"strings"
)

// Rule selects the mixing formula.
type Rule int

const (
	MaxwellGarnett Rule = iota + 1
	Bruggeman
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case MaxwellGarnett:
		return "MaxwellGarnett"
	case Bruggeman:
		return "Bruggeman"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule accepts "mg", "maxwell-garnett", "bruggeman" and similar
// spellings.
func ParseRule(s string) (Rule, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "mg", "maxwellgarnett":
		return MaxwellGarnett, nil
	case "br", "bruggeman":
		return Bruggeman, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrRule, s)
}
