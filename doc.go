// Package hytaleassets extracts the small subset of Hytale game assets the
// Server Manager UI needs (item icons, NPC portraits, map markers and memory
// UI tiles) from Assets.zip into a directory tree organized by category.
//
// The CLI lives in cmd/hytale-assets; this root package exposes the same
// extraction as a Go API so that build tools can embed it without shelling
// out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named hytaleassets:
//
//	import "github.com/kataras/hytale-assets" // package hytaleassets
//
// # Quick start
//
//	archivePath, outputDir := hytaleassets.DefaultPaths("scripts")
//	result, err := hytaleassets.Run(hytaleassets.Options{
//	    ArchivePath: archivePath,
//	    OutputDir:   outputDir,
//	})
//	if errors.Is(err, hytaleassets.ErrArchiveNotFound) {
//	    log.Fatal("download Assets.zip first")
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
//
// # Categories
//
// Entries are selected by a fixed list of archive prefixes, see
// [extractor.DefaultRules]. Only names ending in ".png" (any case) are
// copied, and every file is written under its base name, so two entries
// with the same base name in one category leave the one listed last.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive one line per
// category as it completes. A nil Logger silences all output.
package hytaleassets
