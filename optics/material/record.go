package material

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-dispersion/optics/model"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// DatasetType tags a dataset record.
type DatasetType int

const (
	DatasetTabulatedN DatasetType = iota + 1
	DatasetTabulatedK
	DatasetTabulatedNK
	DatasetTabulatedEps
	DatasetModel
)

// String returns the record spelling of the type.
func (t DatasetType) String() string {
	switch t {
	case DatasetTabulatedN:
		return "tabulated n"
	case DatasetTabulatedK:
		return "tabulated k"
	case DatasetTabulatedNK:
		return "tabulated nk"
	case DatasetTabulatedEps:
		return "tabulated eps"
	case DatasetModel:
		return "model"
	}
	return fmt.Sprintf("DatasetType(%d)", int(t))
}

// ParseDatasetType parses "tabulated n", "tabulated nk", ... and the
// "formula N" and "model Name" forms. For the latter two the model name is
// returned as well.
func ParseDatasetType(s string) (DatasetType, string, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) != 2 {
		return 0, "", fmt.Errorf("%w: dataset type %q", ErrRecord, s)
	}

	switch fields[0] {
	case "tabulated":
		switch fields[1] {
		case "n":
			return DatasetTabulatedN, "", nil
		case "k":
			return DatasetTabulatedK, "", nil
		case "nk":
			return DatasetTabulatedNK, "", nil
		case "eps":
			return DatasetTabulatedEps, "", nil
		}
	case "formula":
		return DatasetModel, "formula " + fields[1], nil
	case "model":
		return DatasetModel, strings.Fields(strings.TrimSpace(s))[1], nil
	}

	return 0, "", fmt.Errorf("%w: dataset type %q", ErrRecord, s)
}

// DatasetRecord is one data set of a material record. Table rows are
// (x, value) or (x, re, im). ValidRange is empty or [min, max] in Kind and
// Unit. A zero Kind means wavelength in µm.
type DatasetRecord struct {
	Type       DatasetType
	ModelName  string
	Kind       spectrum.Kind
	Unit       spectrum.Unit
	ValidRange []float64
	Table      [][]float64
	Parameters []float64
	Yields     model.Output
}

// Record is a structured material description, as read from a catalogue.
type Record struct {
	Metadata Metadata
	Datasets []DatasetRecord
}

// FromRecord builds a material from a record. Options are applied after the
// record's own definitions. Tabulated nk and eps records fill two
// independent real slots, so the result can be extrapolated.
func FromRecord(rec Record, opts ...Option) (*Material, error) {
	if len(rec.Datasets) == 0 {
		return nil, fmt.Errorf("%w: no datasets", ErrRecord)
	}

	all := []Option{WithMetadata(rec.Metadata)}
	defaultSet := false

	for i, ds := range rec.Datasets {
		kind, unit := ds.Kind, ds.Unit
		if kind == 0 {
			kind, unit = spectrum.Wavelength, spectrum.Micrometer
		} else if unit == 0 {
			unit = kind.BaseUnit()
		}

		dsOpts, err := datasetOptions(ds, kind, unit)
		if err != nil {
			return nil, fmt.Errorf("dataset %d (%v): %w", i, ds.Type, err)
		}
		all = append(all, dsOpts...)

		if !defaultSet {
			all = append(all, WithDefaultSpectrum(kind, unit))
			defaultSet = true
		}
	}

	return New(append(all, opts...)...)
}

func datasetOptions(ds DatasetRecord, kind spectrum.Kind, unit spectrum.Unit) ([]Option, error) {
	switch ds.Type {
	case DatasetTabulatedN, DatasetTabulatedK:
		cols, err := columns(ds.Table, 2)
		if err != nil {
			return nil, err
		}
		if ds.Type == DatasetTabulatedN {
			return []Option{WithTabulatedN(cols[0], cols[1], kind, unit)}, nil
		}
		return []Option{WithTabulatedK(cols[0], cols[1], kind, unit)}, nil

	case DatasetTabulatedNK:
		cols, err := columns(ds.Table, 3)
		if err != nil {
			return nil, err
		}
		return []Option{
			WithTabulatedN(cols[0], cols[1], kind, unit),
			WithTabulatedK(cols[0], cols[2], kind, unit),
		}, nil

	case DatasetTabulatedEps:
		cols, err := columns(ds.Table, 3)
		if err != nil {
			return nil, err
		}
		return []Option{
			WithTabulatedEpsR(cols[0], cols[1], kind, unit),
			WithTabulatedEpsI(cols[0], cols[2], kind, unit),
		}, nil

	case DatasetModel:
		m, err := recordModel(ds, kind, unit)
		if err != nil {
			return nil, err
		}
		return []Option{WithModel(m)}, nil
	}

	return nil, fmt.Errorf("%w: unknown dataset type", ErrRecord)
}

func recordModel(ds DatasetRecord, kind spectrum.Kind, unit spectrum.Unit) (*model.Model, error) {
	family, err := model.ParseFamily(ds.ModelName)
	if err != nil {
		return nil, err
	}

	var vr spectrum.Range
	switch len(ds.ValidRange) {
	case 0:
	case 2:
		if vr, err = spectrum.NewRange(ds.ValidRange[0], ds.ValidRange[1], kind, unit); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: valid range needs 2 values, got %d", ErrRecord, len(ds.ValidRange))
	}

	m, err := model.New(family, ds.Parameters, vr)
	if err != nil {
		return nil, err
	}

	if ds.Yields != 0 && ds.Yields != m.Output() {
		return nil, fmt.Errorf("%w: record yields %v but %v yields %v",
			model.ErrParameters, ds.Yields, family, m.Output())
	}

	return m, nil
}

// columns transposes table rows into want columns.
func columns(table [][]float64, want int) ([][]float64, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrRecord)
	}

	cols := make([][]float64, want)
	for c := range cols {
		cols[c] = make([]float64, len(table))
	}

	for r, row := range table {
		if len(row) != want {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRecord, r, len(row), want)
		}
		for c, v := range row {
			cols[c][r] = v
		}
	}

	return cols, nil
}
