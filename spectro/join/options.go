package join

import (
	"log/slog"

	"github.com/cwbudde/algo-spectro/spectro/interp"
)

// DefaultHalfWindow is the default number of samples either side of the seam
// used to estimate the scaling factor.
const DefaultHalfWindow = 50

type config struct {
	r            int
	average      bool
	kind         interp.Kind
	interpolator interp.Interpolator
	logger       *slog.Logger
}

// Option configures [Join].
type Option func(*config)

// WithHalfWindow sets r, the number of samples left and right of the seam
// over which the scaling factor is averaged. Negative values are ignored.
func WithHalfWindow(r int) Option {
	return func(cfg *config) {
		if r >= 0 {
			cfg.r = r
		}
	}
}

// WithAverage selects the averaged seam: samples within r of the seam are
// the mean of both spectra instead of a hard cut.
func WithAverage(average bool) Option {
	return func(cfg *config) {
		cfg.average = average
	}
}

// WithKind selects the interpolation method used for uniform axes.
func WithKind(kind interp.Kind) Option {
	return func(cfg *config) {
		cfg.kind = kind
	}
}

// WithInterpolator injects an interpolator; it takes precedence over
// [WithKind].
func WithInterpolator(ip interp.Interpolator) Option {
	return func(cfg *config) {
		cfg.interpolator = ip
	}
}

// WithLogger enables debug logging of every seam.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := config{
		r:      DefaultHalfWindow,
		kind:   interp.SLinear,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.interpolator == nil {
		ip, err := interp.New(cfg.kind)
		if err != nil {
			return cfg, err
		}
		cfg.interpolator = ip
	}
	return cfg, nil
}
