package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DataPath    string
	StatePath   string
	JournalPath string
	DBPath      string
}

func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return Config{
		DataPath:    dataPath,
		StatePath:   filepath.Join(dataPath, "state"),
		JournalPath: filepath.Join(dataPath, "journal"),
		DBPath:      filepath.Join(dataPath, "index.db"),
	}, nil
}

// DefaultDataPath resolves the per-user data directory, ~/.weldtrack.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".weldtrack"
	}
	return filepath.Join(home, ".weldtrack")
}
