package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint [corpus-id]",
	Short: "Extract the style fingerprint of a stored corpus",
	Long: `Runs the full feature extraction over every sample stored under the
corpus id and prints the resulting fingerprint as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runFingerprint,
}

func init() {
	fingerprintCmd.Flags().String("out", "", "write the fingerprint to a file instead of stdout")
	rootCmd.AddCommand(fingerprintCmd)
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	outPath, _ := cmd.Flags().GetString("out")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening sample store: %w", err)
	}
	defer store.Close()

	fp, err := fingerprintFor(ctx, cfg, store, args[0])
	if err != nil {
		return err
	}

	if fp.InsufficientData {
		fmt.Fprintf(os.Stderr, "Warning: corpus %s has too little usable text; fingerprint is degenerate\n", args[0])
	}

	data, err := json.MarshalIndent(fp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding fingerprint: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Printf("Fingerprint written to %s\n", outPath)
		return nil
	}
	fmt.Println(string(data))
	return nil
}
