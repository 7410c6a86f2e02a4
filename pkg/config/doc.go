// Package config loads typed configuration from environment variables.
//
// Structs are described with github.com/caarlos0/env/v11 field tags and
// populated by Load. The default .env file in the working directory is read
// once through github.com/joho/godotenv when present; LoadEnv reads other
// files explicitly. Each configuration type is parsed once and cached by its
// type name, so repeated Load calls are cheap and safe from any goroutine.
//
//	type Settings struct {
//	    ValuePlaceholder string `env:"GUARDRAIL_VALUE_PLACEHOLDER" envDefault:":value:"`
//	    MaxValueLength   int    `env:"GUARDRAIL_MAX_VALUE_LENGTH" envDefault:"128"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// Errors wrap the sentinels ErrParsingConfig, ErrNilPointer,
// ErrConfigNotLoaded and ErrLoadingEnvFile. Reload and ResetCache discard
// cached values, mostly for tests that change the environment.
package config
