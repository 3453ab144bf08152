package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich [corpus-id]",
	Short: "Generate a qualitative voice portrait for a corpus",
	Long: `Sends the corpus fingerprint and its strongest samples to the
configured completion backend and prints a prose description of the
author's voice. Requires an enrich backend in the config.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runEnrich(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(corpusID string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	enricher, err := newEnricher(cfg)
	if err != nil {
		return err
	}
	if enricher == nil {
		return fmt.Errorf("no enrich backend configured; set enrich.backend in %s", cfgFile)
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening sample store: %w", err)
	}
	defer store.Close()

	c, err := store.LoadCorpus(ctx, corpusID)
	if err != nil {
		return fmt.Errorf("loading corpus %s: %w", corpusID, err)
	}
	fp := newExtractor(cfg).Extract(*c)

	prose, err := enricher.Enrich(ctx, fp, c)
	if err != nil {
		return err
	}

	fmt.Println(prose)
	return nil
}
