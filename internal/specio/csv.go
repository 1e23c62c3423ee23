package specio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// ReadCSV parses a spectrum from comma-separated text. The first column holds
// the signal axis, every further column one spectrum row. An optional header
// row names the axis as "Name (unit)". Lines starting with '#' are ignored.
func ReadCSV(r io.Reader) (*spectrum.Spectrum, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrParse)
	}

	var opts []axis.Option
	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		opts = axisOptions(parseAxisLabel(records[0][0]))
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: header without samples", ErrParse)
	}
	ncols := len(records[0]) - 1
	if ncols < 1 {
		return nil, fmt.Errorf("%w: need an axis column and at least one data column", ErrParse)
	}

	samples := make([]float64, len(records))
	cols := make([][]float64, ncols)
	for c := range cols {
		cols[c] = make([]float64, len(records))
	}
	for i, rec := range records {
		vals, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrParse, i+1, err)
		}
		samples[i] = vals[0]
		for c := range cols {
			cols[c][i] = vals[c+1]
		}
	}

	ax, err := axisFromSamples(samples, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return spectrum.FromRows(ax, cols)
}

// WriteCSV writes s with a header row and one column per spectrum row.
func WriteCSV(w io.Writer, s *spectrum.Spectrum) error {
	ax := s.Axis()
	cols := columns(s)

	cw := csv.NewWriter(w)
	header := make([]string, 0, len(cols)+1)
	header = append(header, formatAxisLabel(ax.Name(), ax.Unit()))
	for c := range cols {
		if len(cols) == 1 {
			header = append(header, "Intensity")
			break
		}
		header = append(header, "Intensity "+strconv.Itoa(c))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(cols)+1)
	for i := range ax.Len() {
		rec[0] = strconv.FormatFloat(ax.At(i), 'g', -1, 64)
		for c, col := range cols {
			rec[c+1] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseRecord(rec []string) ([]float64, error) {
	vals := make([]float64, len(rec))
	for i, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// parseAxisLabel splits "Wavelength (nm)" into name and unit.
func parseAxisLabel(label string) (string, axis.Unit) {
	label = strings.TrimSpace(label)
	open := strings.LastIndex(label, "(")
	if open < 0 || !strings.HasSuffix(label, ")") {
		return label, ""
	}
	name := strings.TrimSpace(label[:open])
	unit := strings.TrimSpace(label[open+1 : len(label)-1])
	return name, axis.ParseUnit(unit)
}

func formatAxisLabel(name string, unit axis.Unit) string {
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, unit)
}
