package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	main "github.com/fwojciec/ciagent/cmd/ciagent"
)

// newTestDeps returns Dependencies writing to buffers.
func newTestDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: main.DefaultConfig(),
	}, stdout, stderr
}
