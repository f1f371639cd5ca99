// Package config loads stattools CLI settings from defaults, an optional
// YAML file and STATTOOLS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/stattools/errs"
	"github.com/sartorproj/stattools/hypothesis"
	"github.com/sartorproj/stattools/logistic"
)

// Global configuration structure.
type Global struct {
	// Classifier
	LearningRate float64 `mapstructure:"learning_rate" yaml:"learning_rate"`
	Epochs       int     `mapstructure:"epochs" yaml:"epochs"`
	Threshold    float64 `mapstructure:"threshold" yaml:"threshold"`
	LogEvery     int     `mapstructure:"log_every" yaml:"log_every"`

	// Splitting and sampling
	TestFraction float64 `mapstructure:"test_fraction" yaml:"test_fraction"`
	Seed         uint64  `mapstructure:"seed" yaml:"seed"`

	// Chi-square Monte Carlo draws
	ChiSquareTrials int `mapstructure:"chisq_trials" yaml:"chisq_trials"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Output   string `mapstructure:"output" yaml:"output"`
}

// EnvPrefix prefixes every environment override, e.g. STATTOOLS_EPOCHS.
const EnvPrefix = "STATTOOLS"

// DefaultPath returns ~/.stattools/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".stattools", "config.yaml"), nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. A missing file is not an error,
// so a new cfgFile can be written with Save.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	opts := logistic.DefaultOptions()
	v.SetDefault("learning_rate", opts.LearningRate)
	v.SetDefault("epochs", opts.Epochs)
	v.SetDefault("threshold", opts.Threshold)
	v.SetDefault("log_every", opts.LogEvery)
	v.SetDefault("test_fraction", 0.2)
	v.SetDefault("seed", uint64(42))
	v.SetDefault("chisq_trials", hypothesis.DefaultTrials)
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "yaml")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else if path, err := DefaultPath(); err == nil {
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to DefaultPath, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects settings the library would refuse at call time.
func (c *Global) Validate() error {
	const op = "config.Validate"
	switch {
	case c.LearningRate <= 0:
		return errs.Invalid(op, "learning_rate %v must be positive", c.LearningRate)
	case c.Epochs <= 0:
		return errs.Invalid(op, "epochs %d must be positive", c.Epochs)
	case c.Threshold < 0 || c.Threshold > 1:
		return errs.Invalid(op, "threshold %v outside [0, 1]", c.Threshold)
	case c.TestFraction <= 0 || c.TestFraction >= 1:
		return errs.Invalid(op, "test_fraction %v outside (0, 1)", c.TestFraction)
	case c.ChiSquareTrials <= 0:
		return errs.Invalid(op, "chisq_trials %d must be positive", c.ChiSquareTrials)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Output {
	case "yaml", "text":
	default:
		return errs.Invalid(op, "output %q, use yaml or text", c.Output)
	}
	return nil
}

// Level parses LogLevel.
func (c *Global) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errs.Invalid("config.Level", "log_level %q", c.LogLevel)
	}
	return level, nil
}

// LogisticOptions returns classifier options built from the configuration.
func (c *Global) LogisticOptions(logger *slog.Logger) *logistic.Options {
	return &logistic.Options{
		LearningRate: c.LearningRate,
		Epochs:       c.Epochs,
		Threshold:    c.Threshold,
		LogEvery:     c.LogEvery,
		Logger:       logger,
	}
}

// ChiSquareConfig returns the chi-square settings; method defaults to Monte
// Carlo.
func (c *Global) ChiSquareConfig() *hypothesis.ChiSquareConfig {
	cfg := hypothesis.DefaultChiSquareConfig()
	cfg.Trials = c.ChiSquareTrials
	return cfg
}
