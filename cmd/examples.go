package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typetone/typetone/internal/examples"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [corpus-id] [topic]",
	Short: "Retrieve few-shot reference examples for a topic",
	Long: `Selects the corpus samples best suited as few-shot references for
writing about the topic. Uses the configured strategy by default and
degrades to engagement ordering when similarity search is unavailable.`,
	Args: cobra.ExactArgs(2),
	RunE: runExamples,
}

func init() {
	examplesCmd.Flags().String("strategy", "", "selection strategy: similarity, engagement, hybrid")
	examplesCmd.Flags().Int("limit", 0, "number of examples to return")
	examplesCmd.Flags().Bool("json", false, "output the pool as JSON")
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	corpusID, topic := args[0], args[1]

	strategyFlag, _ := cmd.Flags().GetString("strategy")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	strategy := cfg.Selector.Strategy
	if strategyFlag != "" {
		strategy = strategyFlag
	}
	if limit <= 0 {
		limit = cfg.Selector.Limit
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening sample store: %w", err)
	}
	defer store.Close()

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return err
	}
	index, err := loadIndex(cfg, embedder)
	if err != nil {
		return err
	}

	fp, err := fingerprintFor(ctx, cfg, store, corpusID)
	if err != nil {
		return err
	}

	deps := examples.Deps{
		Store:    store,
		Embedder: embedder,
		Logger:   log,
		Timeout:  capabilityTimeout(cfg),
		Curated:  fp.ExampleSamples,
	}
	if index != nil {
		deps.Index = index
	}
	selector := examples.NewSelector(deps)

	pool, err := selector.Select(ctx, topic, corpusID, limit, examples.Strategy(strategy))
	if err != nil {
		return fmt.Errorf("selecting examples: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pool)
	}

	fmt.Printf("Strategy: %s", pool.Strategy)
	if pool.FallbackReason != "" {
		fmt.Printf(" (fallback: %s)", pool.FallbackReason)
	}
	fmt.Printf("\n\n")
	for i, ex := range pool.Examples {
		fmt.Printf("%d. %s\n", i+1, truncate(ex.Sample.Content, 120))
		if ex.HybridScore > 0 {
			fmt.Printf("   similarity %.2f  hybrid %.2f  engagement %.0f\n",
				ex.Similarity, ex.HybridScore, ex.Sample.Engagement())
		} else {
			fmt.Printf("   engagement %.0f\n", ex.Sample.Engagement())
		}
	}
	return nil
}
