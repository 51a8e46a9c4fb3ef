package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"kwsearch/config"
	"kwsearch/internal/adapter/fs"
	"kwsearch/internal/adapter/store"
	"kwsearch/internal/port"
	"kwsearch/internal/usecase"
)

var (
	indexDocsFile  string
	indexNoiseFile string
	indexWalk      bool
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Build the keyword index",
	Long: `Build the inverted keyword index and store a snapshot in
.kwsearch/index.db for later queries.

By default the documents come from a docs-list file (one document path per
line) and the noise words from a noise-words file. With --walk, every file
under the given path matching the configured include patterns is indexed
instead.

Examples:
  kwsearch index                          # docs.txt + noisewords.txt
  kwsearch index --docs d.txt --noise n.txt
  kwsearch index --walk ./corpus          # walk a directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVar(&indexDocsFile, "docs", "", "docs-list file (default from config)")
	indexCmd.Flags().StringVar(&indexNoiseFile, "noise", "", "noise-words file (default from config)")
	indexCmd.Flags().BoolVar(&indexWalk, "walk", false, "treat [path] as a directory to walk instead of using a docs-list file")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	source, err := buildSource(cfg, rootDir, args)
	if err != nil {
		return err
	}

	buildUC := usecase.NewBuildUseCase(source)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int, docID string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	result, err := buildUC.Build(progress)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	// Persist the snapshot so query can run in a later invocation.
	if err := config.EnsureDataDir(rootDir); err != nil {
		return fmt.Errorf("failed to create .kwsearch directory: %w", err)
	}
	dbPath := config.IndexDBPath(rootDir)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	idx := buildUC.Index()
	if err := st.SaveIndex(idx.Export(), result.Documents, idx.Stats()); err != nil {
		return fmt.Errorf("failed to save index snapshot: %w", err)
	}

	fmt.Printf("\nIndexing complete:\n")
	fmt.Printf("  Documents indexed: %d\n", result.DocsIndexed)
	fmt.Printf("  Keywords:          %d\n", result.Keywords)
	fmt.Printf("  Occurrences:       %d\n", result.Occurrences)
	fmt.Printf("\nIndex stored at: %s\n", dbPath)
	return nil
}

// buildSource picks the document source for this run: a directory walk with
// --walk, the configured docs-list file otherwise.
func buildSource(cfg *config.Config, rootDir string, args []string) (port.DocumentSource, error) {
	noiseFile := indexNoiseFile
	if noiseFile == "" {
		noiseFile = filepath.Join(rootDir, cfg.Index.NoiseWordsFile)
	}

	if indexWalk {
		path := rootDir
		if len(args) > 0 {
			path = args[0]
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("path does not exist: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("path is not a directory: %s", path)
		}
		// Walk mode tolerates a missing noise-words file.
		if _, err := os.Stat(noiseFile); os.IsNotExist(err) && indexNoiseFile == "" {
			noiseFile = ""
		}
		return fs.NewDirSource(path, cfg.Index.Includes, cfg.Index.Excludes, noiseFile), nil
	}

	docsFile := indexDocsFile
	if docsFile == "" {
		docsFile = filepath.Join(rootDir, cfg.Index.DocsFile)
	}
	return fs.NewListSource(docsFile, noiseFile), nil
}
