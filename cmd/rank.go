package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typetone/typetone/internal/examples"
	"github.com/typetone/typetone/internal/ranker"
)

var rankCmd = &cobra.Command{
	Use:   "rank [corpus-id] [candidates...]",
	Short: "Rank candidate drafts against the author's voice",
	Long: `Scores each candidate draft against the corpus fingerprint and its
synthesized constraints, then prints the candidates best-first.
Candidates come from the arguments or, with --file, one per line from
a file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().String("file", "", "read candidates from a file, one per line")
	rankCmd.Flags().String("topic", "", "topic used to retrieve reference examples")
	rankCmd.Flags().Int("top", 0, "only keep the top N candidates")
	rankCmd.Flags().Float64("min-constraint", 0.8, "constraint score floor for --top")
	rankCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	corpusID := args[0]
	candidates := args[1:]

	filePath, _ := cmd.Flags().GetString("file")
	topic, _ := cmd.Flags().GetString("topic")
	topN, _ := cmd.Flags().GetInt("top")
	minConstraint, _ := cmd.Flags().GetFloat64("min-constraint")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("reading candidates from %s: %w", filePath, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				candidates = append(candidates, line)
			}
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no candidates given; pass them as arguments or via --file")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening sample store: %w", err)
	}
	defer store.Close()

	fp, cs, err := constraintsFor(ctx, cfg, store, corpusID)
	if err != nil {
		return err
	}

	// Reference examples sharpen the vocabulary score. Retrieval failures
	// only cost us that sharpening.
	var exampleTexts []string
	if topic != "" {
		embedder, err := newEmbedder(cfg)
		if err != nil {
			return err
		}
		index, err := loadIndex(cfg, embedder)
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
		pool, err := selector.Select(ctx, topic, corpusID, cfg.Selector.Limit, examples.Strategy(cfg.Selector.Strategy))
		if err == nil && pool != nil {
			exampleTexts = pool.Texts()
		}
	}

	r := ranker.New(cfg.Weights, ranker.TimelineFit{})
	ranked, err := r.Rank(ctx, candidates, fp, cs, exampleTexts)
	if err != nil {
		return fmt.Errorf("ranking candidates: %w", err)
	}

	usedFallback := false
	if topN > 0 {
		ranked, usedFallback = ranker.Top(ranked, topN, minConstraint)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	if usedFallback {
		fmt.Fprintln(os.Stderr, "Note: no candidate cleared the constraint floor; showing best available")
	}
	printRankedTable(ranked)
	return nil
}

func printRankedTable(ranked []ranker.RankedCandidate) {
	for i, rc := range ranked {
		fmt.Printf("%d. [%.3f] %s\n", i+1, rc.Scores.Final, truncate(rc.Text, 100))
		fmt.Printf("   constraint %.2f  length %.2f  punct %.2f  vocab %.2f  fit %.2f  hook %.2f  reply %.2f\n",
			rc.Scores.Constraint, rc.Scores.Length, rc.Scores.Punctuation,
			rc.Scores.Vocabulary, rc.Scores.AlgorithmFit, rc.Scores.Hook, rc.Scores.ReplyTrigger)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
