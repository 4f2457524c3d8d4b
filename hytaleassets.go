package hytaleassets

import (
	"fmt"
	"path/filepath"

	"github.com/kataras/hytale-assets/pkg/archive"
	"github.com/kataras/hytale-assets/pkg/extractor"
	"github.com/kataras/hytale-assets/pkg/formatter"
	"github.com/kataras/hytale-assets/pkg/imager"
)

// Version is the current release of the extractor.
const Version = "0.1.0"

// ArchiveName is the file name of the game asset archive.
const ArchiveName = "Assets.zip"

// ErrArchiveNotFound is returned by Run when the archive does not exist.
// No output is written in that case.
var ErrArchiveNotFound = archive.ErrNotFound

// Options configures the extraction.
type Options struct {
	ArchivePath string // path to Assets.zip
	OutputDir   string // root assets directory
	Logger      Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the extraction output.
type Result struct {
	Categories []*imager.CategoryResult // one per rule, in rule order
	TotalFiles int
	TotalBytes int64
	OutputDir  string // absolute output root
}

// Summary renders the closing report for the result.
func (r *Result) Summary() string {
	return formatter.Summary(r.TotalFiles, r.TotalBytes, r.OutputDir)
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// DefaultPaths derives the archive and output locations from the directory
// holding the tool: the project root is its parent, the archive sits in the
// root and the assets go to app/public/assets.
func DefaultPaths(baseDir string) (archivePath, outputDir string) {
	root := filepath.Dir(filepath.Clean(baseDir))
	return filepath.Join(root, ArchiveName), filepath.Join(root, "app", "public", "assets")
}

// Run executes the extraction and returns per-category and total counts.
// The rules from extractor.DefaultRules are applied in order; each category
// line is logged as soon as the category is written.
func Run(opts Options) (*Result, error) {
	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}

	// Open fails with ErrArchiveNotFound before anything touches the output tree.
	a, err := archive.Open(opts.ArchivePath)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	names := a.Names()

	result := &Result{OutputDir: outputDir}
	for _, rule := range extractor.DefaultRules() {
		matching := extractor.Select(rule, names)

		category, err := imager.WriteCategory(a, matching, imager.WriteConfig{
			OutputDir: outputDir,
			Dest:      rule.Dest,
		})
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", rule.Dest, err)
		}

		opts.logInfo("%s", formatter.CategoryLine(category.Dest, category.Files, category.Bytes))

		result.Categories = append(result.Categories, category)
		result.TotalFiles += category.Files
		result.TotalBytes += category.Bytes
	}

	return result, nil
}
