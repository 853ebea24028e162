package catalogue

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-dispersion/optics/material"
)

// ReadTable reads a single tabulated dataset. Leading lines starting with
// '#' are headers of the form "#Key: value"; header lines without a colon
// are collected as comments. Recognised keys are the metadata fields
// (Name, FullName, Author, Alias, Reference, Comment) and the dataset
// fields SpectrumType, Unit, ValidRange and DataType. Other keys are kept
// in Metadata.Specs.
//
// A zero delimiter splits rows on whitespace. Without a DataType header,
// two columns are read as "tabulated n" and three as "tabulated nk".
func ReadTable(r io.Reader, delimiter rune) (material.Record, error) {
	var (
		rec                material.Record
		ds                 material.DatasetRecord
		kindText, unitText string
		dataType           string
		lineNo, width      int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if len(ds.Table) > 0 {
				continue
			}
			key, value, ok := strings.Cut(strings.TrimSpace(line[1:]), ":")
			if !ok {
				rec.Metadata.Comments = joinLines(rec.Metadata.Comments, strings.TrimSpace(line[1:]))
				continue
			}
			value = strings.TrimSpace(value)
			if setMetadata(&rec.Metadata, key, value) {
				continue
			}
			if err := tableHeader(&ds, &rec.Metadata, key, value, &kindText, &unitText, &dataType); err != nil {
				return material.Record{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		row, err := splitRow(line, delimiter)
		if err != nil {
			return material.Record{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if width == 0 {
			width = len(row)
		}
		if len(row) != width {
			return material.Record{}, fmt.Errorf("%w: line %d has %d columns, want %d", ErrFormat, lineNo, len(row), width)
		}
		ds.Table = append(ds.Table, row)
	}
	if err := sc.Err(); err != nil {
		return material.Record{}, err
	}

	if len(ds.Table) == 0 {
		return material.Record{}, fmt.Errorf("%w: no data rows", ErrFormat)
	}

	var err error
	if dataType != "" {
		if ds.Type, ds.ModelName, err = material.ParseDatasetType(dataType); err != nil {
			return material.Record{}, err
		}
	} else {
		switch width {
		case 2:
			ds.Type = material.DatasetTabulatedN
		case 3:
			ds.Type = material.DatasetTabulatedNK
		default:
			return material.Record{}, fmt.Errorf("%w: %d columns without DataType header", ErrFormat, width)
		}
	}

	if ds.Kind, ds.Unit, err = spectrumOf(kindText, unitText); err != nil {
		return material.Record{}, err
	}

	rec.Datasets = []material.DatasetRecord{ds}
	return rec, nil
}

func tableHeader(ds *material.DatasetRecord, meta *material.Metadata, key, value string, kindText, unitText, dataType *string) error {
	upper := strings.ToUpper(strings.TrimSpace(key))

	switch {
	case strings.HasPrefix(upper, "SPECTRUMTYPE"), strings.HasPrefix(upper, "SPECTRUM_TYPE"):
		*kindText = value
	case strings.HasPrefix(upper, "UNIT"):
		*unitText = value
	case strings.HasPrefix(upper, "DATATYPE"), strings.HasPrefix(upper, "DATA_TYPE"):
		*dataType = value
	case isRangeKey(upper):
		vr, err := parseNumbers(value)
		if err != nil {
			return err
		}
		ds.ValidRange = vr
	default:
		if meta.Specs == nil {
			meta.Specs = map[string]any{}
		}
		meta.Specs[strings.TrimSpace(key)] = value
	}
	return nil
}

func splitRow(line string, delimiter rune) ([]float64, error) {
	if delimiter == 0 {
		return parseNumbers(line)
	}

	fields := strings.Split(line, string(delimiter))
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		vals, err := parseNumbers(f)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, fmt.Errorf("%w: field %q", ErrFormat, f)
		}
		out = append(out, vals[0])
	}
	return out, nil
}
