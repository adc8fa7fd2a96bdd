package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/eclb/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Settings are the user-level defaults read from config.yaml and ECLB_*
// environment variables.
type Settings struct {
	DataDir          string `mapstructure:"data_dir" validate:"required"`
	OutputDir        string `mapstructure:"output_dir" validate:"required"`
	Template         string `mapstructure:"template" validate:"required"`
	FontPath         string `mapstructure:"font_path"`
	Workers          int    `mapstructure:"workers" validate:"gte=0"`
	LabelsPerSticker int    `mapstructure:"labels_per_sticker" validate:"gte=1,lte=4"`
	Theme            string `mapstructure:"theme"`
	Debug            bool   `mapstructure:"debug"`
}

// DBPath is the history database location.
func (s Settings) DBPath() string {
	return filepath.Join(s.DataDir, DBFileName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", util.DataDir(AppName))
	v.SetDefault("output_dir", util.ReportsDir(AppName))
	v.SetDefault("template", DefaultTemplate)
	v.SetDefault("font_path", "")
	v.SetDefault("workers", 0)
	v.SetDefault("labels_per_sticker", DefaultLabelsPerSticker)
	v.SetDefault("theme", "default")
	v.SetDefault("debug", false)
}

// Load reads settings from path, or from config.yaml in the user config
// directory when path is empty. A missing default file is not an error;
// a missing explicit file is.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(util.ConfigDir(AppName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	s := Settings{}
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	slog.Debug("loaded settings", "file", v.ConfigFileUsed(), "settings", s)
	return &s, nil
}
