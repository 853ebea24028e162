package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dispersion/catalogue"
	"github.com/cwbudde/algo-dispersion/measure/kk"
	"github.com/cwbudde/algo-dispersion/optics/ema"
	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/model"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

func newModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List dispersion model families",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Model\tFormula\tSpectrum\tYields\n"); err != nil {
				return fmt.Errorf("failed to write output header: %w", err)
			}
			for _, f := range model.Families() {
				formula := "-"
				if n := f.Formula(); n > 0 {
					formula = strconv.Itoa(n)
				}
				if _, err := fmt.Fprintf(tw, "%v\t%s\t%v [%v]\t%v\n", f, formula, f.Kind(), f.Unit(), f.Output()); err != nil {
					return fmt.Errorf("failed to write output row: %w", err)
				}
			}
			return tw.Flush()
		},
	}
}

func newKKCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kk",
		Short: "Check Kramers-Kronig consistency of a material",
		Long: "kk transforms eps2 over the spectrum into eps1 and reports the deviation\n" +
			"from the material's eps1 inside --window. The spectrum should extend well\n" +
			"beyond the window.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings()
			m, err := a.material(s)
			if err != nil {
				return err
			}
			q, err := a.spectrum(s, m)
			if err != nil {
				return err
			}

			var window spectrum.Range
			if w, _ := cmd.Flags().GetString("window"); w != "" {
				bounds, err := parseFloats(w)
				if err != nil || len(bounds) != 2 {
					return fmt.Errorf("--window: want \"min,max\", got %q", w)
				}
				if window, err = spectrum.NewRange(bounds[0], bounds[1], q.Kind(), q.Unit()); err != nil {
					return err
				}
			}

			rep, err := kk.Check(m, q, window, a.evalOptions(s)...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, rep)
			return err
		},
	}
	cmd.Flags().String("window", "", "range \"min,max\" in --kind and --unit where eps1 is compared")
	return cmd
}

func newMixCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mix",
		Short: "Evaluate an effective medium",
		Long: "mix combines constituents given as --part source:fraction, where source is\n" +
			"a material file or a fixed refractive index. For Maxwell-Garnett the\n" +
			"first part is the host.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings()

			ruleName, _ := cmd.Flags().GetString("rule")
			rule, err := ema.ParseRule(ruleName)
			if err != nil {
				return err
			}

			specs, _ := cmd.Flags().GetStringArray("part")
			parts := make([]ema.Constituent, 0, len(specs))
			mats := make([]*material.Material, 0, len(specs))
			for _, spec := range specs {
				m, f, err := parsePart(spec, s)
				if err != nil {
					return fmt.Errorf("--part %q: %w", spec, err)
				}
				parts = append(parts, ema.Constituent{Material: m, Fraction: f})
				mats = append(mats, m)
			}

			medium, err := ema.New(rule, parts...)
			if err != nil {
				return err
			}
			q, err := a.spectrum(s, mats...)
			if err != nil {
				return err
			}
			a.log.Debug().Str("medium", medium.String()).Msg("mixing")
			return a.printValues(medium, q, s)
		},
	}
	cmd.Flags().String("rule", "bruggeman", "mixing rule (bruggeman, maxwell-garnett)")
	cmd.Flags().StringArray("part", nil, "constituent as source:fraction, repeatable")
	return cmd
}

// parsePart reads "source:fraction". A numeric source is a fixed index.
func parsePart(spec string, s settings) (*material.Material, float64, error) {
	i := strings.LastIndex(spec, ":")
	if i < 0 {
		return nil, 0, errors.New("want source:fraction")
	}
	f, err := strconv.ParseFloat(spec[i+1:], 64)
	if err != nil {
		return nil, 0, err
	}

	source := spec[:i]
	if n, err := strconv.ParseFloat(source, 64); err == nil {
		m, err := material.New(material.WithFixedN(n))
		return m, f, err
	}

	m, err := catalogue.Load(source, material.WithInterpOrder(s.InterpOrder))
	return m, f, err
}
