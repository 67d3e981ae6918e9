package config

import "os"

const DefaultOutputDir = "."

// OutputDir returns the scaffold output directory from the SKELDIR_OUTPUT
// env var, falling back to DefaultOutputDir.
func OutputDir() string {
	if env := os.Getenv("SKELDIR_OUTPUT"); env != "" {
		return env
	}
	return DefaultOutputDir
}
