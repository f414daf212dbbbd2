package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	apperrors "pickpack/internal/platform/errors"
)

const envPrefix = "PICKPACK"

type Config struct {
	// Seed feeds the grid and order generator. Zero picks a time-based seed.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
	Log  Log    `mapstructure:"log" yaml:"log"`
	UI   UI     `mapstructure:"ui" yaml:"ui"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output. The TUI owns stdout, so an empty path
	// discards logs instead of writing to the terminal.
	File string `mapstructure:"file" yaml:"file"`
	JSON bool   `mapstructure:"json" yaml:"json"`
}

type UI struct {
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	Mouse     bool `mapstructure:"mouse" yaml:"mouse"`
}

// LoadOptions selects where configuration is read from. Path overrides the
// default search location; Flags, when set, are bound so that explicitly
// passed flags win over file and environment values.
type LoadOptions struct {
	Path  string
	Flags *pflag.FlagSet
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"seed":      "seed",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load reads configuration from defaults, an optional YAML file, PICKPACK_*
// environment variables and bound flags, in increasing precedence.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)

	v.SetConfigType("yaml")
	if opts.Path != "" {
		v.SetConfigFile(opts.Path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "pickpack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.Path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// --no-mouse inverts ui.mouse, which BindPFlag cannot express.
	if opts.Flags != nil {
		if f := opts.Flags.Lookup("no-mouse"); f != nil && f.Changed && f.Value.String() == "true" {
			c.UI.Mouse = false
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "trace", "debug", "info", "warn", "error", "off":
		return nil
	default:
		return fmt.Errorf("log level %q: %w", c.Log.Level, apperrors.ErrInvalidInput)
	}
}
