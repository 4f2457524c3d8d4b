package imager

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kataras/hytale-assets/pkg/extractor"
)

// EntryReader reads the uncompressed payload of a named archive entry.
// *archive.Archive satisfies it.
type EntryReader interface {
	ReadFile(name string) ([]byte, error)
}

// WriteConfig holds configuration for writing one asset category.
type WriteConfig struct {
	OutputDir string // root assets directory
	Dest      string // category subdirectory, slash separated
}

// WrittenAsset represents a single PNG written to disk.
type WrittenAsset struct {
	Entry    string // archive entry name
	FileName string // base name inside the category directory
	Size     int64
}

// CategoryResult holds the results of writing one category.
type CategoryResult struct {
	Dest   string
	Dir    string // category directory on disk
	Files  int
	Bytes  int64
	Assets []WrittenAsset
}

// WriteCategory creates the category directory and copies every named entry
// into it, flattened to its base name. Entries without a base name are skipped.
// Existing files are truncated, so a repeated base name keeps the last payload.
func WriteCategory(src EntryReader, names []string, config WriteConfig) (*CategoryResult, error) {
	dir := filepath.Join(config.OutputDir, filepath.FromSlash(config.Dest))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	result := &CategoryResult{
		Dest: config.Dest,
		Dir:  dir,
	}

	for _, name := range names {
		fileName := extractor.BaseName(name)
		if fileName == "" {
			continue
		}

		data, err := src.ReadFile(name)
		if err != nil {
			return nil, err
		}

		destPath := filepath.Join(dir, fileName)
		if err := os.WriteFile(destPath, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write file %q: %w", destPath, err)
		}

		result.Files++
		result.Bytes += int64(len(data))
		result.Assets = append(result.Assets, WrittenAsset{
			Entry:    name,
			FileName: fileName,
			Size:     int64(len(data)),
		})
	}

	return result, nil
}
