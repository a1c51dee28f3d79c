package check

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// readMessageFile reads a commit message file, decoding it from the
// configured text encoding into UTF-8. Read and decode errors propagate to
// the caller; they are never retried.
func readMessageFile(path, encoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r, err := decodeReader(f, encoding)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding %s as %s: %w", path, encoding, err)
	}
	return string(data), nil
}

// decodeReader wraps r with a decoder for the named IANA encoding. UTF-8
// (the default) needs no transformation.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return r, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
