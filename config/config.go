package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Patterns Patterns `json:"patterns" yaml:"patterns" mapstructure:"patterns"`
	Library  Library  `json:"library" yaml:"library" mapstructure:"library"`
	Storage  Storage  `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server   Server   `json:"server" yaml:"server" mapstructure:"server"`
}

// Patterns configures filename extraction. Empty values keep the built-in default
// for that role.
type Patterns struct {
	Movie      []string `json:"movie" yaml:"movie" mapstructure:"movie"`
	Separator  string   `json:"separator" yaml:"separator" mapstructure:"separator"`
	Source     string   `json:"source" yaml:"source" mapstructure:"source"`
	VideoCodec string   `json:"videoCodec" yaml:"videoCodec" mapstructure:"videoCodec"`
	AudioCodec string   `json:"audioCodec" yaml:"audioCodec" mapstructure:"audioCodec"`
	DiskNumber string   `json:"diskNumber" yaml:"diskNumber" mapstructure:"diskNumber"`
	TitleCase  bool     `json:"titleCase" yaml:"titleCase" mapstructure:"titleCase"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

type Library struct {
	MovieDir string `json:"movie" yaml:"movie" mapstructure:"movie"`
	// ScanInterval schedules periodic library scans while serving. Zero disables them.
	ScanInterval time.Duration `json:"scanInterval" yaml:"scanInterval" mapstructure:"scanInterval" validate:"gte=0"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	err = validator.New().Struct(c)
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return c, nil
}

// LoadPatterns reads the configuration and returns only the pattern section
func LoadPatterns(cu ConfigUnmarshaler) (Patterns, error) {
	c, err := New(cu)
	if err != nil {
		return Patterns{}, err
	}

	return c.Patterns, nil
}
