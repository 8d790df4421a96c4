// Package config holds the tracker's constants and its runtime configuration,
// read from an optional .env file and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/prep-tracker/internal/util"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the tracker.
type Config struct {
	DataDir string
	Theme   string
	LogFile string
}

// Load reads the given env files (".env" when none are named) and then the
// environment. Missing env files are not an error; values already present in
// the environment win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return Config{
		DataDir: util.ExpandHome(getEnv(EnvDataDir, util.DataDir(AppName))),
		Theme:   getEnv(EnvTheme, DefaultTheme),
		LogFile: util.ExpandHome(getEnv(EnvLogFile, "")),
	}, nil
}

// DBPath is the location of the progress database.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}

// LogPath is where logs go while the terminal interface owns the screen.
func (c Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, LogFileName)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
