package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// LoadBlueprints reads blueprints from path, or from stdin when path is "-".
// Files ending in .zst are zstd-decompressed first. Input whose first
// non-blank byte is '{' is read as a JSON document, anything else as text.
func LoadBlueprints(path string) ([]Blueprint, error) {
	raw, err := readInput(path)
	if err != nil {
		return nil, err
	}
	bps, err := DecodeBlueprints(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bps, nil
}

// DecodeBlueprints picks the text or JSON parser based on content.
func DecodeBlueprints(raw []byte) ([]Blueprint, error) {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		return ParseBlueprintsJSON(trimmed)
	}
	return ParseBlueprints(bytes.NewReader(raw))
}

func readInput(path string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}
	return io.ReadAll(r)
}
