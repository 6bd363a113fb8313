package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "carbonseq",
		Short: "Carbonseq - assess ocean carbon sequestration scenarios",
		Long: `Carbonseq estimates the technical and economic viability of deploying a
genetically modified photosynthetic strain in open ocean to sequester
atmospheric carbon. Given a strain, a site and an operations profile it
reports growth, primary production, sequestered carbon, CO2 removal, an
annual cost breakdown and a composite viability score.

Examples:
  carbonseq evaluate --strain fast_growing_cyanobacteria --site tropical_ocean
  carbonseq evaluate --scenario scenario.yaml --format report
  carbonseq sweep --strain diatom_variant --site temperate_ocean --areas 100,1000,10000
  carbonseq presets list
  carbonseq presets show strain diatom_variant`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, /etc/carbonseq)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewEvaluateCommand())
	rootCmd.AddCommand(NewSweepCommand())
	rootCmd.AddCommand(NewPresetsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
