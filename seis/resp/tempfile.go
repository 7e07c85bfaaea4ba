package resp

import (
	"bytes"
	"fmt"
	"os"
)

// MaterializeFile hands back a filesystem path for the descriptor's RESP
// source. If the descriptor names a file, that path is returned with a no-op
// cleanup. In-memory content is written to a temporary file with native line
// separators (evalresp is picky about them); the returned cleanup removes the
// file and must be called on every exit path.
func MaterializeFile(d Descriptor) (string, func(), error) {
	if err := d.Validate(); err != nil {
		return "", nil, err
	}

	if d.Filename != "" {
		return d.Filename, func() {}, nil
	}

	f, err := os.CreateTemp("", "resp-*")
	if err != nil {
		return "", nil, fmt.Errorf("resp: failed to create temp file: %w", err)
	}

	cleanup := func() { _ = os.Remove(f.Name()) }

	lines := bytes.Split(d.Content, []byte("\n"))
	for i := range lines {
		lines[i] = bytes.TrimSuffix(lines[i], []byte("\r"))
	}

	if _, err := f.Write(bytes.Join(lines, []byte(lineSeparator))); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("resp: failed to write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("resp: failed to close temp file: %w", err)
	}

	return f.Name(), cleanup, nil
}
