package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/material"
)

// app carries the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

// settings is the resolved configuration of one run.
type settings struct {
	File        string
	N, K        float64
	HasN, HasK  bool
	Model       string
	Params      string
	Range       string
	Kind        string
	Unit        string
	Points      int
	Lenient     bool
	Workers     int
	InterpOrder int
	SplineOrder int
	Eps         bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "nkinfo",
		Short: "Evaluate optical dispersion data",
		Long: "nkinfo evaluates a material given by a file, a dispersion model or fixed\n" +
			"values and prints n and k, or the permittivity, over a spectrum.",
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.init,
		RunE: func(*cobra.Command, []string) error {
			s := a.settings()
			m, err := a.material(s)
			if err != nil {
				return err
			}
			q, err := a.spectrum(s, m)
			if err != nil {
				return err
			}
			return a.printValues(m, q, s)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.PersistentFlags()
	f.String("config", "", "config file (yaml, toml or json)")
	f.String("file", "", "material file (.yml, .yaml, .csv, .txt)")
	f.Float64("n", 0, "fixed refractive index")
	f.Float64("k", 0, "fixed extinction coefficient")
	f.String("model", "", "dispersion model, by name or as \"formula N\"")
	f.String("params", "", "comma separated model parameters")
	f.String("range", "", "spectral range \"min,max\" in --kind and --unit")
	f.String("kind", "wavelength", "spectrum kind (wavelength, frequency, energy, angular frequency, wavenumber)")
	f.String("unit", "nm", "spectrum unit")
	f.Int("points", 11, "number of geometrically spaced points")
	f.Bool("lenient", false, "evaluate outside valid ranges, extrapolating tables")
	f.Int("workers", 1, "goroutines used for evaluation")
	f.Int("interp-order", material.DefaultInterpOrder, "interpolation order for tabulated data (0-5)")
	f.Int("spline-order", core.DefaultSplineOrder, "spline order for lenient extrapolation")
	f.Bool("eps", false, "print permittivity instead of n and k")
	f.Bool("verbose", false, "enable debug logging")

	cmd.AddCommand(newModelsCmd(a), newKKCmd(a), newMixCmd(a))

	return cmd
}

// init binds flags, environment and the optional config file, and sets up
// logging on stderr.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	a.v.SetEnvPrefix("NKINFO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level := zerolog.InfoLevel
	if a.v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, NoColor: true}).
		Level(level).
		With().Timestamp().
		Logger()

	return nil
}

func (a *app) settings() settings {
	return settings{
		File:        a.v.GetString("file"),
		N:           a.v.GetFloat64("n"),
		K:           a.v.GetFloat64("k"),
		HasN:        a.v.IsSet("n"),
		HasK:        a.v.IsSet("k"),
		Model:       a.v.GetString("model"),
		Params:      a.v.GetString("params"),
		Range:       a.v.GetString("range"),
		Kind:        a.v.GetString("kind"),
		Unit:        a.v.GetString("unit"),
		Points:      a.v.GetInt("points"),
		Lenient:     a.v.GetBool("lenient"),
		Workers:     a.v.GetInt("workers"),
		InterpOrder: a.v.GetInt("interp-order"),
		SplineOrder: a.v.GetInt("spline-order"),
		Eps:         a.v.GetBool("eps"),
	}
}

func (a *app) evalOptions(s settings) []core.EvalOption {
	opts := []core.EvalOption{
		core.WithLogger(a.log),
		core.WithWorkers(s.Workers),
		core.WithSplineOrder(s.SplineOrder),
	}
	if s.Lenient {
		opts = append(opts, core.WithLenient())
	}
	return opts
}
