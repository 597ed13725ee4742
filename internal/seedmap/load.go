package seedmap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// LoadFile reads a seed map from a local JSON file.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed map file: %w", err)
	}
	defer f.Close()
	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Load reads a seed map from src. Existing local paths are read directly;
// anything else is handed to go-getter (http, s3, gcs, git::, ...) and
// downloaded into a temporary directory first.
func Load(ctx context.Context, src string) (*Map, error) {
	if _, err := os.Stat(src); err == nil {
		return LoadFile(src)
	}
	dir, err := os.MkdirTemp("", "biomegrow-seed-")
	if err != nil {
		return nil, fmt.Errorf("failed to create download dir: %w", err)
	}
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, "seed.json")
	if err := getter.GetFile(dst, src, getter.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("failed to fetch seed map %q: %w", src, err)
	}
	return LoadFile(dst)
}
