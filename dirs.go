package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// listGPXFiles returns the .gpx files directly inside dir, in glob order.
// Subdirectories are not searched.
func listGPXFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.gpx"))
	if err != nil {
		return nil, fmt.Errorf("error listing GPX files in %s: %w", dir, err)
	}
	return files, nil
}

// resetOutputDir deletes dir and everything under it, then recreates it
// empty. A missing directory is not an error.
func resetOutputDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("error clearing output directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory %s: %w", dir, err)
	}
	return nil
}
