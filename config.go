package macrostate

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

const (
	// statePrefix namespaces state entries inside a shared storage root so
	// Flush never touches unrelated files.
	statePrefix = "macro_state_"

	// EnvStateDir is the environment variable consulted for the storage
	// root when no directory is configured explicitly.
	EnvStateDir = "MACRO_STATE_DIR"
)

var loadEnvOnce sync.Once

// StoreConfig controls how a Store is constructed.
type StoreConfig struct {
	Driver Driver

	// Dir is the storage root used by the file driver. When set explicitly
	// it must already exist; a missing or unwritable root surfaces as IO
	// errors from write/append, not at construction time.
	Dir string
}

func (c StoreConfig) withDefaults() StoreConfig {
	if c.Driver == "" {
		c.Driver = DriverFile
	}
	if c.Dir == "" {
		c.Dir = defaultStateDir()
	}
	return c
}

// defaultStateDir resolves the storage root when none was configured:
// MACRO_STATE_DIR from the environment, else a per-user temp directory
// that is created on first use.
func defaultStateDir() string {
	if dir := dirFromEnv(); dir != "" {
		return dir
	}
	dir := filepath.Join(os.TempDir(), "macrostate")
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

func dirFromEnv() string {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load(".env")
	})
	return os.Getenv(EnvStateDir)
}
