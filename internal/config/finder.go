package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultConfigFile is the configuration file name searched for in the
// current directory.
const DefaultConfigFile = ".ketchup.yaml"

// AppName is the application name used for XDG directory paths.
const AppName = "ketchup"

// XDGConfigFile returns the XDG location of the configuration file.
// On Linux: ~/.config/ketchup/ketchup.yaml
func XDGConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "ketchup.yaml")
}

// FindConfigFile locates the configuration file:
//  1. If path is set, use it directly.
//  2. Look for .ketchup.yaml in the current directory.
//  3. Look for the file in the XDG config directory.
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := XDGConfigFile()
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
