package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"kwsearch/config"
	"kwsearch/internal/adapter/store"
	"kwsearch/internal/index"
	"kwsearch/internal/usecase"
)

var (
	queryLimit int
	queryJSON  bool
)

var queryCmd = &cobra.Command{
	Use:   "query <keyword1> [keyword2]",
	Short: "Search the indexed documents",
	Long: `Search the index for documents containing either keyword, ranked by
descending keyword frequency. At most 5 documents are returned; ties are
broken in favor of the first keyword.

Examples:
  kwsearch query bus car
  kwsearch query train --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "k", 0, "maximum results (default from config)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
}

// queryResult is the JSON shape of a query answer.
type queryResult struct {
	Keywords  []string `json:"keywords"`
	Documents []string `json:"documents"`
	Matched   bool     `json:"matched"`
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	dbPath := config.IndexDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no index found. Run 'kwsearch index' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	postings, err := st.LoadPostings()
	if err != nil {
		return fmt.Errorf("failed to load index: %w", err)
	}
	idx := index.Restore(postings)

	limit := cfg.Query.Limit
	if queryLimit > 0 {
		limit = queryLimit
	}
	searchUC := usecase.NewSearchUseCase(idx, limit)

	kw1 := args[0]
	kw2 := ""
	if len(args) > 1 {
		kw2 = args[1]
	}

	docs, matched := searchUC.Top5(kw1, kw2)

	if queryJSON {
		out := queryResult{
			Keywords:  args,
			Documents: docs,
			Matched:   matched,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	if !matched {
		fmt.Println("No matching documents: neither keyword is indexed.")
		return nil
	}

	fmt.Printf("Top %d documents for %v:\n", len(docs), args)
	for i, doc := range docs {
		fmt.Printf("  %d. %s\n", i+1, doc)
	}
	return nil
}
