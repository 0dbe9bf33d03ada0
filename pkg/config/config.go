package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable that overrides a configuration value,
// e.g. SQLFMT_LOG_LEVEL or SQLFMT_SERVE_CODEC.
const EnvPrefix = "SQLFMT_"

type (
	// Log configures the diagnostic sink.
	Log struct {
		// Level is the minimum level recorded: debug, info or warn. Failed format requests are
		// recorded at warn, so higher levels are rejected.
		Level string `yaml:"level,omitempty" toml:"level" env:"LEVEL"`

		// Format selects the record encoding: text or json
		Format string `yaml:"format,omitempty" toml:"format" env:"FORMAT"`

		// File appends diagnostics to the given path instead of writing them to stderr
		File string `yaml:"file,omitempty" toml:"file" env:"FILE"`
	}

	// Editor configures the terminal editor.
	Editor struct {
		// LineNumbers toggles the line number gutter
		LineNumbers bool `yaml:"line_numbers" toml:"line_numbers" env:"LINE_NUMBERS"`

		// FormatKey is the key binding that formats the buffer (e.g. ctrl+f)
		FormatKey string `yaml:"format_key,omitempty" toml:"format_key" env:"FORMAT_KEY"`
	}

	// Serve configures the stream transport used by `sqlfmt serve`.
	Serve struct {
		// Codec is the framing of requests and results: json or msgpack
		Codec string `yaml:"codec,omitempty" toml:"codec" env:"CODEC"`
	}

	// Config represents the sqlfmt configuration.
	Config struct {
		Log    Log    `yaml:"log" toml:"log" envPrefix:"LOG_"`
		Editor Editor `yaml:"editor" toml:"editor" envPrefix:"EDITOR_"`
		Serve  Serve  `yaml:"serve" toml:"serve" envPrefix:"SERVE_"`
	}
)

// Defaults returns the configuration used when no file sets a value.
func Defaults() *Config {
	return &Config{
		Log:    Log{Level: "info", Format: "text"},
		Editor: Editor{LineNumbers: true, FormatKey: "ctrl+f"},
		Serve:  Serve{Codec: "json"},
	}
}

// LoadConfig parses a YAML configuration from the provided io.Reader.
//
// Values missing from the document keep their defaults.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	log:
//	  level: debug
//	serve:
//	  codec: msgpack
//	`))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(cfg.Serve.Codec) // msgpack
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Defaults()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadTOML parses a TOML configuration from the provided io.Reader. Values missing from the
// document keep their defaults.
func LoadTOML(r io.Reader) (*Config, error) {
	cfg := Defaults()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path. Files ending in .toml are
// read as TOML, anything else as YAML.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("sqlfmt.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadTOML(f)
	}

	return LoadConfig(f)
}

// ApplyEnv overrides cfg with the SQLFMT_* variables found in environ. A nil environ reads the
// process environment.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return errors.Wrap(err, "failed to apply environment overrides")
	}

	return cfg.Validate()
}

// Validate reports values outside their allowed set.
func (c *Config) Validate() error {
	if !oneOf(c.Log.Level, "debug", "info", "warn") {
		return errors.Errorf("invalid log level %q (expected debug, info or warn)", c.Log.Level)
	}
	if !oneOf(c.Log.Format, "text", "json") {
		return errors.Errorf("invalid log format %q", c.Log.Format)
	}
	if !oneOf(c.Serve.Codec, "json", "msgpack") {
		return errors.Errorf("invalid serve codec %q", c.Serve.Codec)
	}

	return nil
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}

	return false
}
