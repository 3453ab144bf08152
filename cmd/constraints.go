package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var constraintsCmd = &cobra.Command{
	Use:   "constraints [corpus-id]",
	Short: "Synthesize generation constraints from a corpus fingerprint",
	Long: `Extracts the corpus fingerprint and converts it into hard generation
constraints: length bounds, emoji and hashtag policies, line-break
rules, and banned patterns.`,
	Args: cobra.ExactArgs(1),
	RunE: runConstraints,
}

func init() {
	constraintsCmd.Flags().Bool("json", false, "output the constraint set as JSON")
	constraintsCmd.Flags().Bool("prompt", false, "output as prompt-ready directives")
	rootCmd.AddCommand(constraintsCmd)
}

func runConstraints(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	promptOutput, _ := cmd.Flags().GetBool("prompt")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening sample store: %w", err)
	}
	defer store.Close()

	_, cs, err := constraintsFor(ctx, cfg, store, args[0])
	if err != nil {
		return err
	}

	switch {
	case jsonOutput:
		data, err := json.MarshalIndent(cs, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding constraints: %w", err)
		}
		fmt.Println(string(data))
	case promptOutput:
		fmt.Println(cs.PromptText())
	default:
		fmt.Println(cs.Describe())
	}
	return nil
}
