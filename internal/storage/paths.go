//go:build !js

package storage

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "hotseat"

// DataDir returns the application directory under the XDG data home
// (~/.local/share/hotseat on Linux, ~/Library/Application Support/hotseat
// on macOS, %LOCALAPPDATA%\hotseat on Windows), creating it if needed.
func DataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DatabaseDir returns the directory for storing the BadgerDB database.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
