package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "typetone",
	Short: "Writing-style fingerprinting and candidate ranking for short-form posts",
	Long: `Typetone reads a corpus of one author's posts, extracts a quantitative
style fingerprint, turns it into hard generation constraints, ranks
candidate drafts against the author's voice, and retrieves few-shot
reference examples per topic.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(logrus.WarnLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".typetone.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
