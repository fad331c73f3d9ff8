package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	m := NewMain()

	if err := m.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ProjectsRoot is the directory holding project directories.
	// Set before calling Run().
	ProjectsRoot string

	// DictionaryPath locates the term-frequency dictionary file.
	DictionaryPath string
}

// NewMain returns a new instance of Main with defaults from the
// environment.
func NewMain() *Main {
	return &Main{
		ProjectsRoot:   defaultProjectsRoot(),
		DictionaryPath: defaultDictionaryPath(),
	}
}

// Run executes the CLI with the given arguments. Argument errors are fatal;
// everything the scan itself finds wrong is reported but never fails the
// run.
func (m *Main) Run(args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Stdout:         stdout,
		Stderr:         stderr,
		Logger:         slog.New(slog.NewTextHandler(stderr, nil)),
		ProjectsRoot:   m.ProjectsRoot,
		DictionaryPath: m.DictionaryPath,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docspell"),
		kong.Description("Spell checker for documentation prose in markdown files, Python docstrings, and notebook markdown cells."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no project specified. Run 'docspell --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		_, _ = parser.Parse([]string{"--help"})
		return err
	}

	return kongCtx.Run(deps)
}

func defaultProjectsRoot() string {
	if root := os.Getenv("DOCSPELL_PROJECTS"); root != "" {
		return root
	}
	return "projects"
}

func defaultDictionaryPath() string {
	if path := os.Getenv("DOCSPELL_DICTIONARY"); path != "" {
		return path
	}
	return "frequency_dictionary_en_82_765.txt"
}
