// Package cli contains implementations of CLI commands. The command code is supposed contain only logic specific to
// the CLI and delegate reusable stuff to the packages resources and bundleindex.
// Commands in cli package print progress and results in human-readable format to stdout.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/three-bundles/update-index/internal/bundleindex"
	"github.com/three-bundles/update-index/internal/utils"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Stderrf prints a message to stderr, followed by newline
func Stderrf(format string, args ...any) {
	_, _ = fmt.Fprintf(stderr, format, args...)
	_, _ = fmt.Fprintln(stderr)
}

// Infof prints a progress line prefixed with INFO: to stdout
func Infof(format string, args ...any) {
	_, _ = fmt.Fprintln(stdout, "INFO:", fmt.Sprintf(format, args...))
}

// Warnf prints a warning line prefixed with WARN: to stderr. The prefix is colored when stderr is a terminal.
func Warnf(format string, args ...any) {
	prefix := "WARN:"
	if isTerminal(stderr) {
		c := color.New(color.FgYellow, color.Bold)
		c.EnableColor()
		prefix = c.Sprint(prefix)
	}
	_, _ = fmt.Fprintln(stderr, prefix, fmt.Sprintf(format, args...))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveBaseDir returns the absolute bundle directory. An empty dir denotes the working directory.
func resolveBaseDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cannot determine working directory: %w", err)
		}
		return wd, nil
	}
	dir, err := utils.ExpandHome(dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("error expanding directory name %s: %w", dir, err)
	}
	stat, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot access bundle directory: %w", err)
	}
	if !stat.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// indexFile returns the path of the index file. Relative names are resolved against baseDir.
func indexFile(baseDir, output string) string {
	if output == "" {
		output = bundleindex.DefaultFilename
	}
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(baseDir, output)
}

// Target identifies the index file a command works on
type Target struct {
	// Dir is the bundle directory. Empty means the working directory
	Dir string
	// Output is the index file name, relative to Dir unless absolute. Empty means index.js
	Output string
}

func (t Target) resolve() (baseDir string, file string, err error) {
	baseDir, err = resolveBaseDir(t.Dir)
	if err != nil {
		return "", "", err
	}
	return baseDir, indexFile(baseDir, t.Output), nil
}
