package cmd

import (
	"github.com/spf13/cobra"
	"github.com/typetone/typetone/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize typetone configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure typetone and generates a .typetone.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
