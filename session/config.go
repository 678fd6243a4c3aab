package session

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional TOML configuration consumed by the
// interactive shell.
type Config struct {
	Shell ShellConfig `toml:",omitempty"`
}

type ShellConfig struct {
	Prompt      string `toml:",omitempty"`
	HistoryFile string `toml:",omitempty"`
	NoColor     bool   `toml:",omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt: "> ",
		},
	}
}

func parseConfig(f io.Reader) (*Config, error) {
	out := DefaultConfig()
	_, err := toml.NewDecoder(f).Decode(out)
	return out, err
}

// LoadConfigFromFile reads a shell configuration file. Unset fields
// keep their defaults.
func LoadConfigFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseConfig(f)
}
