// Package testutil provides helpers shared by command tests.
package testutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// CaptureStdout runs f with os.Stdout redirected into a pipe and returns
// what was written. A panic in f is recovered and returned as an error.
//
//	out, err := testutil.CaptureStdout(func() error {
//	    return cmd.Execute()
//	})
func CaptureStdout(f func() error) (string, error) {
	return capture(&os.Stdout, "stdout", f)
}

// CaptureStderr is CaptureStdout for os.Stderr.
func CaptureStderr(f func() error) (string, error) {
	return capture(&os.Stderr, "stderr", f)
}

// CaptureOutput captures stdout and stderr separately.
func CaptureOutput(f func() error) (stdout, stderr string, err error) {
	stdout, err = CaptureStdout(func() error {
		var inner error
		stderr, inner = CaptureStderr(f)
		return inner
	})
	return stdout, stderr, err
}

func capture(target **os.File, name string, f func() error) (string, error) {
	old := *target
	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		return "", fmt.Errorf("capture %s: create pipe: %w", name, pipeErr)
	}

	// drain concurrently so large outputs don't block the writer
	outCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		outCh <- buf.String()
	}()

	*target = w

	var fErr error
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				fErr = fmt.Errorf("capture %s: panic: %v", name, rec)
			}
		}()
		fErr = f()
	}()

	_ = w.Close()
	*target = old

	return <-outCh, fErr
}
