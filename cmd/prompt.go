package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/pteropackages/soar/pkg/output"
)

// promptInput is read by the line prompts when stdin is not a terminal.
var promptInput io.Reader = os.Stdin

// confirm asks a yes/no question. A terminal gets a huh confirm, anything
// else a "[y/N]" line read from promptInput.
func confirm(question string) (bool, error) {
	if promptInput == os.Stdin && output.IsInputTerminal() {
		var ok bool
		err := huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&ok).
			Run()
		if err != nil {
			return false, fmt.Errorf("prompt failed: %w", err)
		}
		return ok, nil
	}
	return confirmLine(question, promptInput, os.Stdout), nil
}

func confirmLine(question string, in io.Reader, out io.Writer) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	line, err := readLine(in)
	if err != nil && line == "" {
		return false
	}
	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes"
}

// readLine reads up to and excluding the next newline one byte at a time, so
// successive prompts on the same reader never lose buffered input.
func readLine(in io.Reader) (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				return strings.TrimSuffix(b.String(), "\r"), nil
			}
			b.WriteByte(buf[0])
		}
		if err != nil {
			return b.String(), err
		}
	}
}

// field is one value collected by askFields.
type field struct {
	title  string
	value  *string
	secret bool
	check  func(string) error
}

// askFields fills each field interactively. Without a terminal the fields
// are read one per line from promptInput; an empty line keeps the current
// value.
func askFields(fields []field) error {
	if promptInput == os.Stdin && output.IsInputTerminal() {
		inputs := make([]huh.Field, 0, len(fields))
		for _, f := range fields {
			in := huh.NewInput().Title(f.title).Value(f.value)
			if f.secret {
				in = in.EchoMode(huh.EchoModePassword)
			}
			if f.check != nil {
				in = in.Validate(f.check)
			}
			inputs = append(inputs, in)
		}
		if err := huh.NewForm(huh.NewGroup(inputs...)).Run(); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		return nil
	}
	return askLines(fields, promptInput, os.Stdout)
}

func askLines(fields []field, in io.Reader, out io.Writer) error {
	for _, f := range fields {
		fmt.Fprintf(out, "%s: ", f.title)
		raw, err := readLine(in)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			if err != nil {
				return nil
			}
			continue
		}
		if f.check != nil {
			if err := f.check(line); err != nil {
				return fmt.Errorf("%s: %w", strings.ToLower(f.title), err)
			}
		}
		*f.value = line
	}
	return nil
}
