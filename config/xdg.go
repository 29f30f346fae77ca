package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	resourceDir    = "pycard"
	configFileName = "pycard.conf"
)

// BaseDirs holds the XDG base directories used to locate configuration
// and data files, in probe order.
type BaseDirs struct {
	ConfigDirs []string
	DataDirs   []string
}

// ResolveBaseDirs reads the XDG environment and falls back to the
// defaults from the base-directory specification. The data directories
// are computed for collaborators (the sync and database layers); this
// package only probes the config directories.
func ResolveBaseDirs() BaseDirs {
	home, _ := os.UserHomeDir()

	configDirs := []string{envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))}
	configDirs = append(configDirs, splitDirList(envOr("XDG_CONFIG_DIRS", "/etc/xdg"))...)

	dataDirs := []string{envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))}
	dataDirs = append(dataDirs, splitDirList(envOr("XDG_DATA_DIRS", "/usr/local/share:/usr/share"))...)

	return BaseDirs{ConfigDirs: configDirs, DataDirs: dataDirs}
}

// ConfigPaths returns resource joined onto every config directory.
func (b BaseDirs) ConfigPaths(resource string) []string {
	return joinAll(b.ConfigDirs, resource)
}

// DataPaths returns resource joined onto every data directory.
func (b BaseDirs) DataPaths(resource string) []string {
	return joinAll(b.DataDirs, resource)
}

// CandidatePaths returns every location where pycard.conf may live, in
// probe order: the XDG config directories, the ~/.pycard dotfile
// fallback, and finally the current directory.
func CandidatePaths() []string {
	resource := filepath.Join(resourceDir, configFileName)
	paths := ResolveBaseDirs().ConfigPaths(resource)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+resourceDir, configFileName))
	}
	return append(paths, configFileName)
}

// FindConfigFile returns the first candidate path that exists on disk,
// or "" when none does.
func FindConfigFile() string {
	for _, path := range CandidatePaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitDirList(v string) []string {
	var dirs []string
	for _, d := range strings.Split(v, ":") {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func joinAll(dirs []string, resource string) []string {
	paths := make([]string, len(dirs))
	for i, d := range dirs {
		paths[i] = filepath.Join(d, resource)
	}
	return paths
}

// expandUser substitutes a leading ~ with the user home directory. The
// path is not checked for existence.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
