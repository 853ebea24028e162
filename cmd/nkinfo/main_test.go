package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

var filmCSV = filepath.Join("..", "..", "catalogue", "testdata", "film.csv")

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func rows(out string) [][]string {
	var res [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		res = append(res, strings.Fields(line))
	}
	return res
}

func TestFixedPermittivity(t *testing.T) {
	out, _, err := run(t, "--n", "1.5", "--k", "0.1", "--eps", "--range", "500,600", "--points", "2")
	require.NoError(t, err)

	r := rows(out)
	require.Len(t, r, 3)
	assert.Equal(t, []string{"wavelength", "[nm]", "eps_r", "eps_i"}, r[0])
	assert.Equal(t, []string{"500", "2.24", "0.3"}, r[1])
	assert.Equal(t, []string{"600", "2.24", "0.3"}, r[2])
}

func TestFileTable(t *testing.T) {
	out, _, err := run(t, "--file", filmCSV, "--range", "450,550", "--points", "3")
	require.NoError(t, err)

	r := rows(out)
	require.Len(t, r, 4)
	assert.Equal(t, "1.65", r[1][1])
	assert.Equal(t, "0", r[1][2])
	assert.Equal(t, "1.55", r[3][1])
}

func TestFileDefaultsToValidRange(t *testing.T) {
	out, _, err := run(t, "--file", filmCSV, "--points", "2")
	require.NoError(t, err)

	r := rows(out)
	require.Len(t, r, 3)
	assert.Equal(t, "400", r[1][0])
	assert.Equal(t, "600", r[2][0])
}

func TestStrictAndLenient(t *testing.T) {
	_, _, err := run(t, "--file", filmCSV, "--range", "300,700", "--points", "3")
	require.ErrorIs(t, err, spectrum.ErrOutOfRange)

	out, logs, err := run(t, "--file", filmCSV, "--range", "300,700", "--points", "3", "--lenient", "--spline-order", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, "extrapolating tabulated data")

	r := rows(out)
	assert.Equal(t, "1.8", r[1][1])
	assert.Equal(t, "1.4", r[3][1])
}

func TestModelFlags(t *testing.T) {
	out, _, err := run(t,
		"--model", "drude", "--params", "8.55,0.0184",
		"--kind", "wavelength", "--unit", "um", "--range", "0.5,0.6", "--points", "2",
	)
	require.NoError(t, err)

	r := rows(out)
	assert.Equal(t, []string{"0.5", "0.0133667", "3.29975"}, r[1])
}

func TestEnvironment(t *testing.T) {
	t.Setenv("NKINFO_N", "1.33")
	t.Setenv("NKINFO_INTERP_ORDER", "2")

	out, _, err := run(t, "--range", "500,600", "--points", "2")
	require.NoError(t, err)
	assert.Equal(t, "1.33", rows(out)[1][1])
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nkinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 2\nrange: 400,500\npoints: 2\neps: true\n"), 0o600))

	out, _, err := run(t, "--config", path)
	require.NoError(t, err)

	r := rows(out)
	require.Len(t, r, 3)
	assert.Equal(t, "4", r[1][1])
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "--range", "500,600")
	assert.ErrorIs(t, err, errNoSource)

	_, _, err = run(t, "--n", "1.5", "--unit", "eV")
	assert.ErrorIs(t, err, spectrum.ErrUnsupportedUnit)

	_, _, err = run(t, "--n", "1.5", "--range", "500")
	assert.Error(t, err)
}

func TestModelsCommand(t *testing.T) {
	out, _, err := run(t, "models")
	require.NoError(t, err)

	assert.Contains(t, out, "Sellmeier2")
	assert.Contains(t, out, "TaucLorentz")
	assert.Len(t, rows(out), 13)
}

func TestKKCommand(t *testing.T) {
	out, _, err := run(t,
		"--model", "tauc-lorentz", "--params", "1,1.5,100,3.5,2",
		"--kind", "energy", "--unit", "eV", "--range", "0.01,100", "--points", "4000",
		"kk", "--window", "0.5,10",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "eps∞=")
}

func TestMixCommand(t *testing.T) {
	out, _, err := run(t, "mix", "--rule", "bruggeman", "--part", "1:0.7", "--part", "2:0.3",
		"--eps", "--range", "500,600", "--points", "2")
	require.NoError(t, err)

	r := rows(out)
	require.Len(t, r, 3)
	assert.Equal(t, "1.6", r[1][1])

	_, _, err = run(t, "mix", "--part", "1:0.5", "--part", "2:0.4")
	assert.Error(t, err)
}
