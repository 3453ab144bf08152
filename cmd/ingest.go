package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typetone/typetone/internal/corpus"
	"github.com/typetone/typetone/internal/progress"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files or globs...]",
	Short: "Load sample JSON files into the corpus store and vector index",
	Long: `Reads sample files produced by a collector, stores them in the sample
database under a corpus id, and, when an embedding backend is
configured, indexes them for similarity search. Arguments may be plain
paths or doublestar globs like exports/**/*.json.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().String("corpus", "", "corpus id to ingest into (defaults to each file's source id)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	corpusID, _ := cmd.Flags().GetString("corpus")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	paths, err := corpus.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding patterns: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no sample files matched %v", args)
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

	reporter := progress.NewReporter()
	reporter.Start(len(paths))

	total := 0
	for i, path := range paths {
		reporter.Update(i+1, path)

		c, err := corpus.LoadFile(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		id := corpusID
		if id == "" {
			id = c.SourceID
		}

		if err := store.SaveSamples(ctx, id, c.Samples); err != nil {
			return fmt.Errorf("storing samples from %s: %w", path, err)
		}

		if index != nil {
			if err := index.AddSamples(ctx, id, c.Samples); err != nil {
				return fmt.Errorf("indexing samples from %s: %w", path, err)
			}
		}
		total += len(c.Samples)
	}
	reporter.Finish()

	if index != nil {
		if err := index.Persist(indexDir(cfg)); err != nil {
			return fmt.Errorf("persisting vector index: %w", err)
		}
	}

	fmt.Printf("Ingested %d samples from %d files\n", total, len(paths))
	return nil
}
