// Package system locates per-user directories.
package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var ErrNoConfigFolder = errors.New("no config folder")

// ConfigFolder returns the folder for per-user configuration:
// %LOCALAPPDATA% on windows and $HOME/.config elsewhere.
func ConfigFolder() (string, error) {
	return configFolder(runtime.GOOS, os.Getenv)
}

func configFolder(goos string, getenv func(string) string) (string, error) {
	if goos == "windows" {
		dir := getenv("LOCALAPPDATA")
		if dir == "" {
			return "", fmt.Errorf("%w: %%LOCALAPPDATA%% is not set", ErrNoConfigFolder)
		}
		return dir, nil
	}
	home := getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("%w: $HOME is not set", ErrNoConfigFolder)
	}
	return filepath.Join(home, ".config"), nil
}
