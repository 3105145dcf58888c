// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config builds the tools' configuration once at process start:
// defaults, then an optional doctools.yaml, then DOCTOOLS_* environment
// variables (and DIRCLI_STORE for the bookmark file). The result is passed
// explicitly into the domain constructors.
package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/doctools/internal/homedir"
	"github.com/pdiddy/doctools/pkg/types"
)

const (
	appName   = "doctools"
	envPrefix = "DOCTOOLS"

	// StoreEnv overrides the bookmark file location.
	StoreEnv = "DIRCLI_STORE"

	// StoreFileName is the bookmark file created in the home directory.
	StoreFileName = ".dircli_store.json"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", "")
	v.SetDefault("convert.compiler", "typst")
	v.SetDefault("convert.output_dir", "")
	v.SetDefault("merge.qpdf", "qpdf")
	v.SetDefault("merge.ghostscript", "gs")
	v.SetDefault("merge.installer", []string{"sudo", "dnf", "install", "-y", "qpdf"})
}

// Load reads configuration. cfgFile, when set, must exist; otherwise
// ./doctools.yaml and ~/.config/doctools/doctools.yaml are tried. The
// config file in use is announced on stderr.
func Load(cfgFile string, stderr io.Writer) (*types.Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Resolve(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("store.path", StoreEnv, envPrefix+"_STORE_PATH"); err != nil {
		return nil, fmt.Errorf("binding %s: %w", StoreEnv, err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if stderr != nil {
		fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// StorePath returns the bookmark file location: the configured path if
// any, else StoreFileName inside the directory home returns.
func StorePath(cfg types.StoreConfig, home func() (string, error)) (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}
	dir, err := home()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StoreFileName), nil
}
