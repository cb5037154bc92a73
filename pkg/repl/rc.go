package repl

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultPrompt = ">> "

// Config is the configuration read from the rc file.
type Config struct {
	// Prompt is written before reading each line when the input is a
	// terminal.
	Prompt string `yaml:"prompt"`
	// MaxHistory caps the session history; zero means no cap.
	MaxHistory int `yaml:"max-history"`
}

func defaultConfig() Config {
	return Config{Prompt: defaultPrompt}
}

// rcPath returns the default path of the rc file, rc.yaml under the calq
// directory in the OS-specific config directory.
func rcPath() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(configHome, "calq", "rc.yaml"), nil
}

// readConfig reads the rc file at path. A missing file is not an error; the
// defaults are returned. On a malformed file the defaults are returned along
// with the error, so the caller can warn and continue.
func readConfig(path string) (Config, error) {
	cfg := defaultConfig()
	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return defaultConfig(), err
	}
	if err := yaml.Unmarshal(bs, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	return cfg, nil
}
