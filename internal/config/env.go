package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environ returns the process environment laid over the values of the given
// dotenv files, later files winning over earlier ones. Missing files are
// skipped. The process environment is never modified.
func Environ(dotenvFiles ...string) (map[string]string, error) {
	out := make(map[string]string)

	for _, path := range dotenvFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		maps.Copy(out, values)
	}

	maps.Copy(out, env.ToMap(os.Environ()))
	return out, nil
}

// FromEnv reads the QRGEN_* variables from environ.
func FromEnv(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
