package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// printValues writes one row per spectral point.
func (a *app) printValues(m material.Dispersive, q spectrum.Quantity, s settings) error {
	opts := a.evalOptions(s)

	reCol, imCol := "n", "k"

	var (
		vals []complex128
		err  error
	)
	if s.Eps {
		vals, err = m.EvaluatePermittivity(q, opts...)
		reCol, imCol = "eps_r", "eps_i"
	} else {
		vals, err = m.EvaluateNK(q, opts...)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%v [%v]\t%s\t%s\n", q.Kind(), q.Unit(), reCol, imCol); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for i, v := range vals {
		if _, err := fmt.Fprintf(tw, "%.6g\t%.6g\t%.6g\n", q.At(i), real(v), imag(v)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}
