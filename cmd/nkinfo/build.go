package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dispersion/catalogue"
	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/model"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

var errNoSource = errors.New("nothing to evaluate: use --file, --model, --n or --k")

// material builds the material described by s. A file or a model may be
// combined with fixed values for the missing half of a pair.
func (a *app) material(s settings) (*material.Material, error) {
	opts := []material.Option{material.WithInterpOrder(s.InterpOrder)}

	if s.Model != "" {
		m, err := buildModel(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, material.WithModel(m))
	}
	if s.HasN {
		opts = append(opts, material.WithFixedN(s.N))
	}
	if s.HasK {
		opts = append(opts, material.WithFixedK(s.K))
	}

	if s.File != "" {
		a.log.Debug().Str("file", s.File).Msg("loading material")
		return catalogue.Load(s.File, opts...)
	}
	if len(opts) == 1 {
		return nil, errNoSource
	}
	return material.New(opts...)
}

func buildModel(s settings) (*model.Model, error) {
	family, err := model.ParseFamily(s.Model)
	if err != nil {
		return nil, err
	}
	params, err := parseFloats(s.Params)
	if err != nil {
		return nil, fmt.Errorf("--params: %w", err)
	}
	return model.New(family, params, spectrum.Range{})
}

// spectrum returns the points to evaluate: --range if given, otherwise
// the common valid range of the materials. Unbounded ranges fall back to
// 100 nm to 2000 nm.
func (a *app) spectrum(s settings, mats ...*material.Material) (spectrum.Quantity, error) {
	kind, err := spectrum.ParseKind(s.Kind)
	if err != nil {
		return spectrum.Quantity{}, err
	}
	unit, err := spectrum.ParseUnitFor(kind, s.Unit)
	if err != nil {
		return spectrum.Quantity{}, err
	}

	var r spectrum.Range
	if s.Range != "" {
		bounds, err := parseFloats(s.Range)
		if err != nil || len(bounds) != 2 {
			return spectrum.Quantity{}, fmt.Errorf("--range: want \"min,max\", got %q", s.Range)
		}
		if r, err = spectrum.NewRange(bounds[0], bounds[1], kind, unit); err != nil {
			return spectrum.Quantity{}, err
		}
	} else {
		r = spectrum.Unbounded(kind, unit)
		for _, m := range mats {
			mr, err := m.MaxValidRange()
			if err != nil {
				return spectrum.Quantity{}, err
			}
			if r, err = r.Intersect(mr); err != nil {
				return spectrum.Quantity{}, err
			}
		}
		if r.IsUnbounded() {
			fallback := spectrum.Range{Min: 100, Max: 2000, Kind: spectrum.Wavelength, Unit: spectrum.Nanometer}
			if r, err = fallback.In(kind, unit); err != nil {
				return spectrum.Quantity{}, err
			}
		}
	}

	a.log.Debug().Str("range", r.String()).Int("points", s.Points).Msg("spectrum")
	return r.GeomSpace(s.Points)
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
