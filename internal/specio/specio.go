package specio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// TitleKey is the metadata key holding a spectrum title.
const TitleKey = "title"

var (
	// ErrFormat indicates an unknown or unsupported file format.
	ErrFormat = errors.New("specio: unsupported format")
	// ErrParse indicates malformed file content.
	ErrParse = errors.New("specio: malformed input")
)

// Format identifies an on-disk representation.
type Format int

// Supported formats.
const (
	CSV Format = iota
	FITS
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case FITS:
		return "fits"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSV, nil
	case ".fits", ".fit", ".fts":
		return FITS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, path)
	}
}

// ReadFile loads a spectrum, choosing the format from the extension.
// The file name without extension becomes the title when none is stored.
func ReadFile(path string) (*spectrum.Spectrum, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s *spectrum.Spectrum
	switch format {
	case FITS:
		s, err = ReadFITS(f)
	default:
		s, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if s.Metadata()[TitleKey] == "" {
		base := filepath.Base(path)
		s = withTitle(s, strings.TrimSuffix(base, filepath.Ext(base)))
	}
	return s, nil
}

// WriteFile stores s, choosing the format from the extension.
func WriteFile(path string, s *spectrum.Spectrum) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case FITS:
		err = WriteFITS(f, s)
	default:
		err = WriteCSV(f, s)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// uniformTolerance is the relative spacing deviation still treated as uniform.
const uniformTolerance = 1e-9

// axisFromSamples builds a uniform axis when the samples are evenly spaced
// and a non-uniform one otherwise.
func axisFromSamples(samples []float64, opts ...axis.Option) (axis.Axis, error) {
	if len(samples) >= 2 {
		step := (samples[len(samples)-1] - samples[0]) / float64(len(samples)-1)
		uniform := step > 0
		for i := 1; i < len(samples) && uniform; i++ {
			if math.Abs(samples[i]-samples[i-1]-step) > uniformTolerance*math.Abs(step)*float64(len(samples)) {
				uniform = false
			}
		}
		if uniform {
			return axis.NewUniform(samples[0], step, len(samples), opts...)
		}
	}
	return axis.NewNonUniform(samples, opts...)
}

// axisOptions turns stored axis metadata into constructor options; empty
// fields keep the axis defaults.
func axisOptions(name string, unit axis.Unit) []axis.Option {
	var opts []axis.Option
	if name != "" {
		opts = append(opts, axis.WithName(name))
	}
	if unit != "" {
		opts = append(opts, axis.WithUnit(unit))
	}
	return opts
}

func withTitle(s *spectrum.Spectrum, title string) *spectrum.Spectrum {
	meta := s.Metadata()
	meta[TitleKey] = title
	out, err := spectrum.New(s.Axis(), s.Data(), spectrum.WithNavigation(s.Navigation()...), spectrum.WithMetadata(meta))
	if err != nil {
		// Same axis and data as s, so the shape is already valid.
		return s
	}
	return out
}

// columns splits the row-major data of s into one column per row.
func columns(s *spectrum.Spectrum) [][]float64 {
	cols := make([][]float64, s.Rows())
	for i := range cols {
		cols[i] = s.Row(i)
	}
	return cols
}
