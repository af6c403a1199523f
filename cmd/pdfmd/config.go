package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/tsawler/pdfmd"
	"github.com/tsawler/pdfmd/reader"
)

const envPrefix = "PDFMD"

// fileConfig is the shape of pdfmd.yaml.
type fileConfig struct {
	MaxPages int           `yaml:"max_pages" mapstructure:"max_pages"`
	Reader   reader.Config `yaml:"reader" mapstructure:"reader"`

	pdfmd.Config `yaml:",inline" mapstructure:",squash"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		MaxPages: pdfmd.DefaultMaxPages,
		Reader:   reader.DefaultConfig(),
		Config:   pdfmd.DefaultConfig(),
	}
}

// loadConfig merges defaults, the config file and PDFMD_* environment
// variables, in increasing priority. An explicit path must exist; the
// default locations are optional.
func loadConfig(path string) (fileConfig, error) {
	v := viper.New()

	if err := setDefaults(v, defaultFileConfig()); err != nil {
		return fileConfig{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pdfmd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pdfmd"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fileConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fileConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fileConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every leaf of cfg as a viper default so that
// nested keys can be overridden from the environment.
func setDefaults(v *viper.Viper, cfg fileConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding defaults: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("decoding defaults: %w", err)
	}
	setDefaultTree(v, "", tree)
	return nil
}

func setDefaultTree(v *viper.Viper, prefix string, tree map[string]any) {
	for key, value := range tree {
		if prefix != "" {
			key = prefix + "." + key
		}
		if sub, ok := value.(map[string]any); ok {
			setDefaultTree(v, key, sub)
			continue
		}
		v.SetDefault(key, value)
	}
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configFile)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return enc.Close()
		},
	}
}
