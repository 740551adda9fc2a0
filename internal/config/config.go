// Package config layers defaults, an optional config file, LESSONPLAN_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan"
)

const (
	EnvPrefix         = "LESSONPLAN"
	DefaultConfigName = "lessonplan"
)

// Keys shared by the config file, environment and flags.
const (
	KeyMode      = "mode"
	KeyTemplate  = "template"
	KeyOutputDir = "output-dir"
	KeyInput     = "input"
	KeyVerbose   = "verbose"
)

// Config is the resolved configuration of one CLI run.
type Config struct {
	Mode         lessonplan.Mode
	TemplatePath string
	OutputDir    string
	InputPath    string
	Verbose      bool
	// ConfigFile is the config file that was read, if any.
	ConfigFile string
}

// Load resolves the configuration. cfgFile, when set, must exist; otherwise
// lessonplan.yaml is looked up in the working directory and
// ~/.config/lessonplan. Only flags present in flags are bound.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config
	v := viper.New()

	v.SetDefault(KeyMode, string(lessonplan.ModeTemplate))
	v.SetDefault(KeyTemplate, "")
	v.SetDefault(KeyOutputDir, "")
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyVerbose, false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		cfg.ConfigFile = v.ConfigFileUsed()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyMode, KeyTemplate, KeyOutputDir, KeyInput, KeyVerbose} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	mode, err := lessonplan.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return cfg, err
	}
	cfg.Mode = mode
	cfg.TemplatePath = v.GetString(KeyTemplate)
	cfg.OutputDir = v.GetString(KeyOutputDir)
	cfg.InputPath = v.GetString(KeyInput)
	cfg.Verbose = v.GetBool(KeyVerbose)
	return cfg, nil
}

// NewLogger returns a text logger at Info, or Debug when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
