package config

import (
	"os"

	"github.com/pkg/errors"
)

// FileNames are the configuration files looked up in the working directory, in order.
var FileNames = []string{"sqlfmt.yaml", "sqlfmt.yml", "sqlfmt.toml"}

// Loader resolves the configuration for a command invocation.
type Loader struct {
	// Environ overrides the process environment when set.
	Environ map[string]string
}

// NewLoader creates a Loader that reads the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the configuration for the current working directory.
//
// An explicit path must exist. Without one, the first of FileNames found in the working directory is
// used, falling back to Defaults. Environment overrides are applied last.
func (l *Loader) Load(path string) (*Config, error) {
	cfg, err := l.load(path)
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg, l.Environ); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) load(path string) (*Config, error) {
	if path != "" {
		return LoadConfigFile(path)
	}

	for _, name := range FileNames {
		if _, err := os.Stat(name); err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return nil, errors.Wrapf(err, "failed to stat %s", name)
		}

		return LoadConfigFile(name)
	}

	return Defaults(), nil
}
