// Package where resolves the per-user directories and files reelctl reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/reelctl/reelctl/constant"
	"github.com/reelctl/reelctl/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "REELCTL_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory, following os.UserConfigDir unless REELCTL_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Reelctl))
}

// Cache is the cache directory. It falls back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Reelctl))
}

func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History is the resume position store.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Sockets holds mpv IPC sockets for running sessions.
func Sockets() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Reelctl))
}
