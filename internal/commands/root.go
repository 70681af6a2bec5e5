package commands

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.2.1"

var rootCmd = &cobra.Command{
	Use:     "terrastrap",
	Short:   "Interactive Terraform configuration scaffolder",
	Long:    "Terrastrap collects deployment choices through an interactive terminal menu and emits a ready-to-edit Terraform configuration.",
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outFlag, "out", "", "Directory for generated files (default: ./<project>)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(authCmd)
}

// outFlag holds the --out flag value.
var outFlag string
