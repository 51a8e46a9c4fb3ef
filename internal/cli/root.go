package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"kwsearch/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "kwsearch",
	Short: "Little keyword search engine - index documents and answer top-5 queries",
	Long: `kwsearch builds an inverted index over a set of documents, keeping each
keyword's document occurrences in descending order of frequency, and answers
two-keyword "or" queries with the top 5 matching documents.

Example usage:
  kwsearch index                 # Index the documents listed in docs.txt
  kwsearch index --walk ./docs   # Index every matching file under a directory
  kwsearch query bus car         # Top 5 documents containing bus or car`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./kwsearch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
