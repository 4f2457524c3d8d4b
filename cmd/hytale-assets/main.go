package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	hytaleassets "github.com/kataras/hytale-assets"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = hytaleassets.Version

var (
	archivePath string
	outputDir   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hytale-assets",
		Short: "Extract UI assets from Hytale's Assets.zip",
		Long:  "A tool to extract item icons, NPC portraits, map markers and memory UI tiles from Assets.zip into app/public/assets",
		Args:  cobra.NoArgs,
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&archivePath, "archive", "a", "", "Path to Assets.zip (default: <project root>/Assets.zip)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output assets directory (default: <project root>/app/public/assets)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hytale-assets version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	defaultArchive, defaultOutput, err := defaultPaths()
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if archivePath == "" {
		archivePath = defaultArchive
	}
	if outputDir == "" {
		outputDir = defaultOutput
	}

	opts := hytaleassets.Options{
		ArchivePath: archivePath,
		OutputDir:   outputDir,
		Logger:      &cliLogger{},
	}

	result, err := hytaleassets.Run(opts)
	if errors.Is(err, hytaleassets.ErrArchiveNotFound) {
		missing := archivePath
		if abs, absErr := filepath.Abs(archivePath); absErr == nil {
			missing = abs
		}
		red.Printf("ERROR: %s not found at %s\n", hytaleassets.ArchiveName, missing)
		fmt.Println("Download it using the Hytale downloader or place it in the project root.")
		os.Exit(1)
	}
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	green.Println(result.Summary())
}

// defaultPaths resolves the archive and output locations relative to the
// directory holding the executable.
func defaultPaths() (string, string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	a, o := hytaleassets.DefaultPaths(filepath.Dir(exe))
	return a, o, nil
}

// cliLogger implements hytaleassets.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
