package formatter

import (
	"fmt"
	"strings"
)

const (
	kib = 1024
	mib = 1024 * 1024
)

// KiB converts a byte count to kibibytes.
func KiB(bytes int64) float64 {
	return float64(bytes) / kib
}

// MiB converts a byte count to mebibytes.
func MiB(bytes int64) float64 {
	return float64(bytes) / mib
}

// CategoryLine renders the progress line printed after a category is written,
// e.g. "  items: 12 files (48 KB)".
func CategoryLine(dest string, files int, bytes int64) string {
	return fmt.Sprintf("  %s: %d files (%.0f KB)", dest, files, KiB(bytes))
}

// Summary renders the closing report: a blank line, the grand total and
// the output directory, without a trailing newline.
func Summary(totalFiles int, totalBytes int64, outputDir string) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total: %d files (%.1f MB)\n", totalFiles, MiB(totalBytes)))
	sb.WriteString(fmt.Sprintf("Output: %s", outputDir))

	return sb.String()
}
