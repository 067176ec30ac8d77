package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrTerminalInput is returned when no file was given and stdin is a terminal.
var ErrTerminalInput = errors.New("no input provided (stdin is a terminal); use -i flag or pipe JSON input")

// FileReader decodes a JSON document of type T from the file named by its
// --input flag, or from stdin when the flag is unset.
type FileReader[T any] struct {
	inputFlagValue string

	// Stdin overrides os.Stdin. Terminal detection only applies to *os.File.
	Stdin io.Reader
}

// Flag returns the --input/-i flag bound to the reader. It does not reuse
// --file/-f, which names the todos file globally.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "input",
		Aliases:     []string{"i"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.inputFlagValue,
	}
}

// Read decodes the input.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	reader, closer, err := fr.open()
	if err != nil {
		return input, err
	}
	defer closer()

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

func (fr *FileReader[T]) open() (io.Reader, func(), error) {
	if fr.inputFlagValue != "" {
		f, err := os.Open(fr.inputFlagValue)
		if err != nil {
			return nil, nil, fmt.Errorf("open file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}

	stdin := fr.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil, ErrTerminalInput
	}
	return stdin, func() {}, nil
}
