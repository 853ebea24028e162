package catalogue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/model"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

func TestReadYAMLDatabaseFile(t *testing.T) {
	rec, err := ReadFile(filepath.Join("testdata", "bk7.yml"))
	require.NoError(t, err)

	assert.Equal(t, "SCHOTT Zemax catalog 2017-01-20b", rec.Metadata.References)
	assert.Equal(t, "lens glass", rec.Metadata.Comments)
	assert.InDelta(t, 1.5168, rec.Metadata.Specs["nd"], 1e-12)

	require.Len(t, rec.Datasets, 2)

	formula := rec.Datasets[0]
	assert.Equal(t, material.DatasetModel, formula.Type)
	assert.Equal(t, "formula 2", formula.ModelName)
	assert.Equal(t, []float64{0.3, 2.5}, formula.ValidRange)
	assert.Len(t, formula.Parameters, 7)
	assert.Zero(t, formula.Kind)

	k := rec.Datasets[1]
	assert.Equal(t, material.DatasetTabulatedK, k.Type)
	require.Len(t, k.Table, 4)
	assert.Equal(t, []float64{0.5, 6.7745e-09}, k.Table[1])
}

func TestLoadYAML(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "bk7.yml"))
	require.NoError(t, err)

	assert.Equal(t, material.RepNK, m.Representation())
	assert.Equal(t, material.SourceModel, m.Source(material.SlotN))
	assert.Equal(t, material.SourceTabulated, m.Source(material.SlotK))

	q := spectrum.Must(spectrum.New([]float64{587.6}, spectrum.Wavelength, spectrum.Nanometer))
	nk, err := m.EvaluateNK(q)
	require.NoError(t, err)
	assert.InDelta(t, 1.5167984379050086, real(nk[0]), 1e-9)
	assert.Greater(t, imag(nk[0]), 0.0)

	r, err := m.MaxValidRange()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, r.Min, 1e-12)
	assert.InDelta(t, 2.5, r.Max, 1e-12)
}

func TestLoadYAMLModel(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "drude.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gold", m.Metadata().Name)

	kind, unit := m.DefaultSpectrum()
	assert.Equal(t, spectrum.Energy, kind)
	assert.Equal(t, spectrum.Electronvolt, unit)

	q := spectrum.Must(spectrum.New([]float64{0.5}, spectrum.Wavelength, spectrum.Micrometer))
	nk, err := m.EvaluateNK(q)
	require.NoError(t, err)
	assert.InDelta(t, 0.013366748652710245, real(nk[0]), 1e-8)
	assert.InDelta(t, 3.2997524521729824, imag(nk[0]), 1e-8)

	far := spectrum.Must(spectrum.New([]float64{50}, spectrum.Wavelength, spectrum.Micrometer))
	_, err = m.EvaluateNK(far)
	assert.ErrorIs(t, err, spectrum.ErrOutOfRange)
}

func TestReadTextTable(t *testing.T) {
	rec, err := ReadFile(filepath.Join("testdata", "silver.txt"))
	require.NoError(t, err)

	assert.Equal(t, "Ag", rec.Metadata.Name)
	assert.Equal(t, "silver, evaporated film", rec.Metadata.FullName)
	assert.Equal(t, "Johnson and Christy, http://example.org/jc", rec.Metadata.References)
	assert.Equal(t, "measured at room temperature", rec.Metadata.Comments)
	assert.Equal(t, "glass", rec.Metadata.Specs["Substrate"])

	require.Len(t, rec.Datasets, 1)
	ds := rec.Datasets[0]
	assert.Equal(t, material.DatasetTabulatedNK, ds.Type)
	assert.Equal(t, spectrum.Energy, ds.Kind)
	assert.Equal(t, spectrum.Electronvolt, ds.Unit)
	assert.Len(t, ds.Table, 4)

	m, err := material.FromRecord(rec)
	require.NoError(t, err)

	q := spectrum.Must(spectrum.New([]float64{1.64}, spectrum.Energy, spectrum.Electronvolt))
	nk, err := m.EvaluateNK(q)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, real(nk[0]), 1e-12)
	assert.InDelta(t, 4.43, imag(nk[0]), 1e-12)
}

func TestReadCSV(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "film.csv"))
	require.NoError(t, err)

	q := spectrum.Must(spectrum.New([]float64{450}, spectrum.Wavelength, spectrum.Nanometer))
	nk, err := m.EvaluateNK(q)
	require.NoError(t, err)
	assert.InDelta(t, 1.65, real(nk[0]), 1e-12)
	assert.Zero(t, imag(nk[0]))
}

func TestReadTableDataType(t *testing.T) {
	src := "#DataType: tabulated eps\n#Unit: um\n0.4 2.89 0.1\n0.6 2.25 0.05\n"
	rec, err := ReadTable(strings.NewReader(src), 0)
	require.NoError(t, err)
	assert.Equal(t, material.DatasetTabulatedEps, rec.Datasets[0].Type)
	assert.Equal(t, spectrum.Wavelength, rec.Datasets[0].Kind)
	assert.Equal(t, spectrum.Micrometer, rec.Datasets[0].Unit)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		read func() error
		err  error
	}{
		{"ragged rows", func() error {
			_, err := ReadTable(strings.NewReader("1 2\n3 4 5\n"), 0)
			return err
		}, ErrFormat},
		{"no rows", func() error {
			_, err := ReadTable(strings.NewReader("#Name: x\n"), 0)
			return err
		}, ErrFormat},
		{"not a number", func() error {
			_, err := ReadTable(strings.NewReader("1,a\n"), ',')
			return err
		}, ErrFormat},
		{"bad unit", func() error {
			_, err := ReadTable(strings.NewReader("#SpectrumType: energy\n#Unit: nm\n1 2\n"), 0)
			return err
		}, spectrum.ErrUnsupportedUnit},
		{"empty yaml", func() error {
			_, err := ReadYAML(strings.NewReader(""))
			return err
		}, ErrFormat},
		{"no data", func() error {
			_, err := ReadYAML(strings.NewReader("REFERENCES: x\n"))
			return err
		}, ErrFormat},
		{"untyped dataset", func() error {
			_, err := ReadYAML(strings.NewReader("DATA:\n  - data: 1 2\n"))
			return err
		}, ErrFormat},
		{"bad dataset type", func() error {
			_, err := ReadYAML(strings.NewReader("DATA:\n  - type: spline n\n"))
			return err
		}, material.ErrRecord},
		{"bad yields", func() error {
			_, err := ReadYAML(strings.NewReader("DATA:\n  - type: model Drude\n    yields: q\n"))
			return err
		}, model.ErrUnknownOutput},
		{"extension", func() error {
			_, err := ReadFile("material.json")
			return err
		}, ErrUnsupportedFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.read(), tc.err)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadYAMLSequenceTable(t *testing.T) {
	src := `
DATA:
  - type: tabulated nk
    data:
      - [0.4, 1.7, 0.01]
      - [0.6, 1.5, 0.02]
`
	rec, err := ReadYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.4, 1.7, 0.01}, {0.6, 1.5, 0.02}}, rec.Datasets[0].Table)
}
