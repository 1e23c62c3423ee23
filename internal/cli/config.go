package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-spectro/spectro/interp"
	"github.com/cwbudde/algo-spectro/spectro/join"
)

// ConfigFileName is read from the working directory when --config is not set.
const ConfigFileName = "specjoin.yml"

// Config holds the join settings shared by file, flags and defaults.
type Config struct {
	HalfWindow int    `koanf:"half_window" yaml:"half_window"`
	Average    bool   `koanf:"average" yaml:"average"`
	Kind       string `koanf:"kind" yaml:"kind"`
	ToEnergy   bool   `koanf:"to_energy" yaml:"to_energy"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		HalfWindow: join.DefaultHalfWindow,
		Kind:       interp.SLinear.String(),
	}
}

// JoinOptions converts c into options for [join.Join].
func (c Config) JoinOptions() ([]join.Option, error) {
	kind, err := interp.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	return []join.Option{
		join.WithHalfWindow(c.HalfWindow),
		join.WithAverage(c.Average),
		join.WithKind(kind),
	}, nil
}

// loadConfig layers defaults, the YAML file at path and explicitly set flags.
// A missing default file is ignored; a missing explicit file is an error.
func loadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, err
	}

	if path == "" {
		if _, err := os.Stat(ConfigFileName); err == nil {
			path = ConfigFileName
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if flags != nil {
		set := map[string]any{}
		flags.Visit(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if isConfigKey(key) {
				set[key] = f.Value.String()
			}
		})
		if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isConfigKey(key string) bool {
	switch key {
	case "half_window", "average", "kind", "to_energy":
		return true
	}
	return false
}
