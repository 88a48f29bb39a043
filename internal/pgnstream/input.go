package pgnstream

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the four-byte frame magic number zstd-compressed streams
// start with.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// SpoolStdin drains r (the builder's PGN input, optionally zstd-compressed
// per SPEC_FULL.md §6) into a temporary file and returns its path, so the
// rest of the pipeline can use the freeeve/pgn library's path-based
// interface uniformly. The caller is responsible for removing the file.
func SpoolStdin(r io.Reader) (path string, err error) {
	buffered := bufio.NewReader(r)
	peek, err := buffered.Peek(4)
	if err != nil && err != io.EOF {
		return "", err
	}

	var source io.Reader = buffered
	if bytes.Equal(peek, zstdMagic) {
		dec, err := zstd.NewReader(buffered)
		if err != nil {
			return "", err
		}
		defer dec.Close()
		source = dec
	}

	tmp, err := os.CreateTemp("", "openbook-input-*.pgn")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, source); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
