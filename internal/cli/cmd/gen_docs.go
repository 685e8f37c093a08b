package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/edgedock/internal/cli/styles"
	"github.com/bnema/edgedock/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for every command",
	Long: `Generate documentation from the command definitions.

Formats:
  man       Unix manual pages, installed to ~/.local/share/man/man1 by default
  markdown  one markdown file per command, written to ./docs by default

Run 'mandb' afterwards if 'man edgedock' does not find the new pages.

Examples:
  edgedock gen-docs
  edgedock gen-docs --format markdown --output ./site/cli`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

// docFormat renders the command tree into dir and names the file extension
// it produces.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		generate: func(root *cobra.Command, dir string) error {
			return doc.GenManTree(root, manHeader(), dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenMarkdownTree,
	},
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	outputDir := genDocsOutputDir
	if outputDir == "" {
		dir, err := format.defaultDir()
		if err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
		outputDir = dir
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Footer timestamps would make every regeneration a diff.
	rootCmd.DisableAutoGenTag = true
	if err := format.generate(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	r := styles.NewCLIRenderer(styles.NewTheme())
	fmt.Println(r.RenderSuccess("wrote " + genDocsFormat + " docs to " + outputDir))
	for _, name := range generatedFiles(outputDir, format.ext) {
		fmt.Printf("  - %s\n", name)
	}
	return nil
}

// manHeader dates the pages from the build so packaged pages are stable.
func manHeader() *doc.GenManHeader {
	date := time.Now()
	if t, err := time.Parse(time.RFC3339, buildInfo.BuildDate); err == nil {
		date = t
	}
	return &doc.GenManHeader{
		Title:   "EDGEDOCK",
		Section: "1",
		Source:  "edgedock " + buildInfo.Version,
		Manual:  "edgedock Manual",
		Date:    &date,
	}
}

func generatedFiles(dir, ext string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
