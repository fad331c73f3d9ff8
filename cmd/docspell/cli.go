package main

import (
	"io"
	"log/slog"
)

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// ProjectsRoot is the directory holding project directories.
	ProjectsRoot string

	// DictionaryPath locates the term-frequency dictionary file.
	DictionaryPath string
}

// CLI defines the command-line interface structure for Kong: one mandatory
// project argument and an optional task number.
type CLI struct {
	Project string `arg:"" help:"Project directory under the projects root"`
	Task    string `arg:"" optional:"" help:"1-based task number restricting the run to a single task"`
}
