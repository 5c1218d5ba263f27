// Package cliutil provides shared CLI utilities for mlangc.
package cliutil

import (
	"fmt"
	"os"
	"strings"
)

// Flags holds the flags recognized by mlangc. The zero value is "no flags
// set, no source path".
type Flags struct {
	LexOnly     bool // -l
	Parse       bool // -p
	WriteTokens bool // -t
	Stats       bool // -s
	HelpFlag    bool // -h / --help
	Output      string
	Source      string
}

// ParseArgs parses mlangc's flag set out of args. Unrecognized flags are
// collected but not rejected here; main reports them.
func ParseArgs(args []string) (flags Flags, unknown []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			flags.HelpFlag = true
		case arg == "-l":
			flags.LexOnly = true
		case arg == "-p":
			flags.Parse = true
		case arg == "-t":
			flags.WriteTokens = true
		case arg == "-s":
			flags.Stats = true
		case arg == "-o" || arg == "--output":
			if i+1 < len(args) {
				i++
				flags.Output = args[i]
			}
		case strings.HasPrefix(arg, "-o"):
			flags.Output = arg[2:]
		case strings.HasPrefix(arg, "--output="):
			flags.Output = arg[len("--output="):]
		case len(arg) > 0 && arg[0] == '-':
			unknown = append(unknown, arg)
		default:
			if flags.Source == "" {
				flags.Source = arg
			} else {
				unknown = append(unknown, arg)
			}
		}
	}
	return flags, unknown
}

// GetOutput opens path for writing, or returns stdout if path is empty.
func GetOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	if dir := dirOf(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func dirOf(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}

// PrintError writes a formatted error message to stderr, in the style
// every mlangc subcommand uses to report a failure.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
