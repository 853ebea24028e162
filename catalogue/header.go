package catalogue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// rangeKeys are the accepted spellings of a dataset's valid range.
var rangeKeys = []string{"validrange", "valid_range", "range", "spectra_range", "wavelength_range"}

// setMetadata stores value under the metadata field whose name prefixes
// key. Keys are matched case-insensitively, so "REFERENCES" and
// "Reference" both fill References.
func setMetadata(meta *material.Metadata, key, value string) bool {
	key = strings.ToUpper(strings.TrimSpace(key))

	switch {
	case strings.HasPrefix(key, "FULLNAME"), strings.HasPrefix(key, "FULL_NAME"):
		meta.FullName = value
	case strings.HasPrefix(key, "NAME"):
		meta.Name = value
	case strings.HasPrefix(key, "AUTHOR"):
		meta.Author = value
	case strings.HasPrefix(key, "ALIAS"):
		meta.Alias = value
	case strings.HasPrefix(key, "REFERENCE"):
		meta.References = value
	case strings.HasPrefix(key, "COMMENT"):
		meta.Comments = joinLines(meta.Comments, value)
	default:
		return false
	}
	return true
}

func joinLines(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + "\n" + b
}

func isRangeKey(key string) bool {
	key = strings.ToLower(key)
	for _, k := range rangeKeys {
		if key == k {
			return true
		}
	}
	return false
}

// spectrumOf resolves the optional spectrum type and unit of a dataset.
// Both empty yields zero values, which records read as wavelength in µm.
// A kind without unit uses µm for wavelength, eV for energy and the SI
// unit otherwise.
func spectrumOf(kindText, unitText string) (spectrum.Kind, spectrum.Unit, error) {
	kindText, unitText = strings.TrimSpace(kindText), strings.TrimSpace(unitText)

	switch {
	case kindText == "" && unitText == "":
		return 0, 0, nil

	case kindText == "":
		unit, err := spectrum.ParseUnit(unitText)
		if err != nil {
			return 0, 0, err
		}
		return unit.Kind(), unit, nil
	}

	kind, err := spectrum.ParseKind(kindText)
	if err != nil {
		return 0, 0, err
	}

	if unitText == "" {
		switch kind {
		case spectrum.Wavelength:
			return kind, spectrum.Micrometer, nil
		case spectrum.Energy:
			return kind, spectrum.Electronvolt, nil
		}
		return kind, kind.BaseUnit(), nil
	}

	unit, err := spectrum.ParseUnitFor(kind, unitText)
	if err != nil {
		return 0, 0, err
	}
	return kind, unit, nil
}

// parseNumbers splits s on whitespace and commas.
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrFormat, f)
		}
		out[i] = v
	}
	return out, nil
}
