package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "ZONEVATOR_"

// ApplyEnv loads envFile (if it exists) into the process environment and then
// overrides c from ZONEVATOR_* variables named after the env tags on Config.
// Variables already set in the environment win over the file, and unset
// variables leave c untouched.
func ApplyEnv(c *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	if err := env.ParseWithOptions(c, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("read %s variables: %w", envPrefix, err)
	}
	return nil
}
