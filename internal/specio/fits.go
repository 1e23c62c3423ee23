package specio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/astrogo/fitsio"

	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// tableName is the extension name of the binary table holding the spectrum.
const tableName = "SPECTRUM"

// WriteFITS streams s to w as an empty primary HDU followed by a binary
// table with an AXIS column and one DATAn column per spectrum row.
func WriteFITS(w io.Writer, s *spectrum.Spectrum) error {
	fits, err := fitsio.Create(w)
	if err != nil {
		return err
	}
	defer fits.Close()

	phdu, err := fitsio.NewPrimaryHDU(nil)
	if err != nil {
		return err
	}
	defer phdu.Close()
	if title := s.Metadata()[TitleKey]; title != "" {
		if err := phdu.Header().Append(fitsio.Card{Name: "OBJECT", Value: title}); err != nil {
			return err
		}
	}
	if err := fits.Write(phdu); err != nil {
		return err
	}

	ax := s.Axis()
	cols := columns(s)
	defs := make([]fitsio.Column, 0, len(cols)+1)
	defs = append(defs, fitsio.Column{Name: "AXIS", Format: "D", Unit: string(ax.Unit())})
	for c := range cols {
		defs = append(defs, fitsio.Column{Name: "DATA" + strconv.Itoa(c), Format: "D"})
	}
	tbl, err := fitsio.NewTable(tableName, defs, fitsio.BINARY_TBL)
	if err != nil {
		return err
	}
	defer tbl.Close()

	cards := []fitsio.Card{
		{Name: "AXNAME", Value: ax.Name(), Comment: "signal axis name"},
		{Name: "AXUNIT", Value: string(ax.Unit()), Comment: "signal axis unit"},
	}
	if nav := s.Navigation(); len(nav) > 0 {
		cards = append(cards, fitsio.Card{Name: "NAVSHAPE", Value: formatShape(nav), Comment: "navigation shape"})
	}
	if err := tbl.Header().Append(cards...); err != nil {
		return err
	}

	vals := make([]float64, len(defs))
	row := make([]any, len(defs))
	for i := range row {
		row[i] = &vals[i]
	}
	for i := range ax.Len() {
		vals[0] = ax.At(i)
		for c, col := range cols {
			vals[c+1] = col[i]
		}
		if err := tbl.Write(row...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return fits.Write(tbl)
}

// ReadFITS parses a spectrum written by [WriteFITS].
func ReadFITS(r io.Reader) (*spectrum.Spectrum, error) {
	fits, err := fitsio.Open(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer fits.Close()

	var tbl *fitsio.Table
	for _, hdu := range fits.HDUs() {
		if t, ok := hdu.(*fitsio.Table); ok && strings.EqualFold(hdu.Name(), tableName) {
			tbl = t
			break
		}
	}
	if tbl == nil {
		return nil, fmt.Errorf("%w: no %s table", ErrParse, tableName)
	}
	ncols := tbl.NumCols()
	if ncols < 2 {
		return nil, fmt.Errorf("%w: table has %d columns", ErrParse, ncols)
	}

	nrows := tbl.NumRows()
	rows, err := tbl.Read(0, nrows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer rows.Close()

	samples := make([]float64, 0, nrows)
	cols := make([][]float64, ncols-1)
	vals := make([]float64, ncols)
	dst := make([]any, ncols)
	for i := range dst {
		dst[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(dst...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		samples = append(samples, vals[0])
		for c := range cols {
			cols[c] = append(cols[c], vals[c+1])
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	hdr := tbl.Header()
	unit := axis.ParseUnit(cardString(hdr, "AXUNIT"))
	ax, err := axisFromSamples(samples, axisOptions(cardString(hdr, "AXNAME"), unit)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	data := make([]float64, 0, len(cols)*len(samples))
	for _, col := range cols {
		data = append(data, col...)
	}
	var opts []spectrum.Option
	if shape := cardString(hdr, "NAVSHAPE"); shape != "" {
		nav, err := parseShape(shape)
		if err != nil {
			return nil, err
		}
		opts = append(opts, spectrum.WithNavigation(nav...))
	} else if len(cols) > 1 {
		opts = append(opts, spectrum.WithNavigation(len(cols)))
	}
	if title := cardString(fits.HDU(0).Header(), "OBJECT"); title != "" {
		opts = append(opts, spectrum.WithMetadata(spectrum.Metadata{TitleKey: title}))
	}
	return spectrum.New(ax, data, opts...)
}

func cardString(hdr *fitsio.Header, name string) string {
	card := hdr.Get(name)
	if card == nil {
		return ""
	}
	s, _ := card.Value.(string)
	return strings.TrimSpace(s)
}

// formatShape renders a navigation shape as "2x3".
func formatShape(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

func parseShape(s string) ([]int, error) {
	parts := strings.Split(s, "x")
	dims := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: navigation shape %q", ErrParse, s)
		}
		dims[i] = d
	}
	return dims, nil
}
