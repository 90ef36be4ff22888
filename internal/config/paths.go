// Package config resolves platform-specific filesystem paths.
package config

import (
	"os"
	"path/filepath"
)

// UserCacheDir returns the application cache directory for sample storage
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\termchart\
		localAppData := platform.GetEnv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.UserHomeDir()
			return filepath.Join(home, ".termchart")
		}
		return filepath.Join(localAppData, "termchart")
	case "darwin":
		// ~/Library/Caches/termchart/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Caches", "termchart")
	default:
		// ~/.cache/termchart/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, ".cache", "termchart")
	}
}

// SampleDBPath returns the path to the SQLite sample database
func SampleDBPath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, "samples.db")
}
