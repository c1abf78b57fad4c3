package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	path := os.Getenv("CREDITLENS_RUNTIME_PATH")
	if path == "" {
		path = ".creditlens"
	}
	return resolveRuntimePath(path)
}

func resolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
