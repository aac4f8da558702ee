package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from AOC_* environment variables, which may also be set
// in a .env file in the working directory.
type Config struct {
	// Session is the session cookie of the puzzle site. If empty, it is
	// read from SessionFile.
	Session string
	// SessionFile defaults to $HOME/keys/aoc.session.
	SessionFile string `split_words:"true"`
	// InputDir is where inputs are cached, as <year>/<day>.input.
	InputDir string `split_words:"true" default:"."`
	BaseURL  string `split_words:"true" default:"https://adventofcode.com"`
}

// LoadConfig loads the .env file, if any, and then the environment.
// Variables already set in the environment win over the .env file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	var c Config
	if err := envconfig.Process("AOC", &c); err != nil {
		return Config{}, fmt.Errorf("reading AOC environment: %w", err)
	}
	if c.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding session file: %w", err)
		}
		c.SessionFile = filepath.Join(home, "keys", "aoc.session")
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	return c, nil
}

func (c Config) session() (string, error) {
	if c.Session != "" {
		return c.Session, nil
	}
	b, err := os.ReadFile(c.SessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
