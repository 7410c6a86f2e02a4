package directive

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/guardrail/pkg/config"
)

// ErrInvalidConfigFile is returned when a YAML config file cannot be read or parsed.
var ErrInvalidConfigFile = errors.New("invalid directive config file")

// Config controls how violation messages are rendered.
type Config struct {
	ValuePlaceholder    string `env:"GUARDRAIL_VALUE_PLACEHOLDER" envDefault:":value:" yaml:"value_placeholder"`
	TargetPlaceholder   string `env:"GUARDRAIL_TARGET_PLACEHOLDER" envDefault:":target:" yaml:"target_placeholder"`
	NilSentinel         string `env:"GUARDRAIL_NIL_SENTINEL" envDefault:"<nil>" yaml:"nil_sentinel"`
	CyclicSentinel      string `env:"GUARDRAIL_CYCLIC_SENTINEL" envDefault:"<cyclic>" yaml:"cyclic_sentinel"`
	UnprintableSentinel string `env:"GUARDRAIL_UNPRINTABLE_SENTINEL" envDefault:"<unprintable>" yaml:"unprintable_sentinel"`
	// MaxValueLength caps rendered values, in runes. Zero or less disables the cap.
	MaxValueLength int `env:"GUARDRAIL_MAX_VALUE_LENGTH" envDefault:"128" yaml:"max_value_length"`
}

// DefaultConfig returns the built-in settings without reading the environment.
func DefaultConfig() Config {
	return Config{
		ValuePlaceholder:    ":value:",
		TargetPlaceholder:   ":target:",
		NilSentinel:         "<nil>",
		CyclicSentinel:      "<cyclic>",
		UnprintableSentinel: "<unprintable>",
		MaxValueLength:      128,
	}
}

// LoadConfig reads Config from the environment and an optional .env file.
// The result is cached for the life of the process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

// ParseConfig reads a YAML document. Keys that are absent keep their
// DefaultConfig values.
//
//	value_placeholder: "{value}"
//	max_value_length: 64
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfigFile, err)
	}
	return cfg.withDefaults(), nil
}

// LoadConfigFile reads and parses the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfigFile, err)
	}
	return ParseConfig(data)
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ValuePlaceholder == "" {
		c.ValuePlaceholder = def.ValuePlaceholder
	}
	if c.TargetPlaceholder == "" {
		c.TargetPlaceholder = def.TargetPlaceholder
	}
	if c.NilSentinel == "" {
		c.NilSentinel = def.NilSentinel
	}
	if c.CyclicSentinel == "" {
		c.CyclicSentinel = def.CyclicSentinel
	}
	if c.UnprintableSentinel == "" {
		c.UnprintableSentinel = def.UnprintableSentinel
	}
	return c
}
