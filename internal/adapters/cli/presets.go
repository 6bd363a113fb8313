package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/presets"
)

// NewPresetsCommand creates the presets command with subcommands.
func NewPresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Browse the preset strain and site catalogs",
		Long: `List and inspect the built-in sample strains and deployment sites.
Preset names are the values accepted by the --strain and --site flags.

Examples:
  carbonseq presets list
  carbonseq presets show strain diatom_variant
  carbonseq presets show site temperate_ocean`,
	}

	cmd.AddCommand(newPresetsListCommand())
	cmd.AddCommand(newPresetsShowCommand())

	return cmd
}

func newPresetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all preset names",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "STRAINS\t")
			for _, name := range presets.StrainNames() {
				strain, err := presets.Strain(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, strain.Name)
			}

			fmt.Fprintln(w, "\t")
			fmt.Fprintln(w, "SITES\t")
			for _, name := range presets.SiteNames() {
				site, err := presets.Site(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, site.String())
			}

			return w.Flush()
		},
	}
}

func newPresetsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <strain|site> <name>",
		Short: "Show one preset in full",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name := args[0], args[1]

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()

			switch kind {
			case "strain":
				strain, err := presets.Strain(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "Name\t%s\n", strain.Name)
				fmt.Fprintf(w, "Carbon Content\t%.1f%% dry weight\n", strain.CarbonContentPercent)
				fmt.Fprintf(w, "Doubling Time\t%.1f hours\n", strain.DoublingTimeHours)
				fmt.Fprintf(w, "Photosynthetic Efficiency\t%.2f\n", strain.PhotosyntheticEfficiency)
				fmt.Fprintf(w, "Sinking Rate\t%.1f m/day\n", strain.SinkingRateMPerDay)
				fmt.Fprintf(w, "Export Fraction\t%.1f%%\n", strain.ExportFraction*100)
				fmt.Fprintf(w, "Optimal Temperature\t%.1f–%.1f °C\n", strain.OptimalTemperature.Min, strain.OptimalTemperature.Max)
				fmt.Fprintf(w, "Optimal Salinity\t%.1f–%.1f ppt\n", strain.OptimalSalinity.Min, strain.OptimalSalinity.Max)
				fmt.Fprintf(w, "Genetic Kill Switch\t%v\n", strain.GeneticKillSwitch)
				fmt.Fprintf(w, "R&D Cost\t$%.1fM\n", strain.ResearchCostMillions)
			case "site":
				site, err := presets.Site(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "Euphotic Depth\t%.0f m\n", site.EuphoticDepthM)
				fmt.Fprintf(w, "Surface Temperature\t%.1f °C\n", site.SurfaceTemperatureCelsius)
				fmt.Fprintf(w, "Salinity\t%.1f ppt\n", site.SalinityPPT)
				fmt.Fprintf(w, "Nitrogen\t%.1f µmol/L\n", site.NutrientNitrogenUmolPerL)
				fmt.Fprintf(w, "Phosphorus\t%.2f µmol/L\n", site.NutrientPhosphorusUmolPerL)
				fmt.Fprintf(w, "Iron\t%.2f nmol/L\n", site.NutrientIronNmolPerL)
				fmt.Fprintf(w, "Mixing Depth\t%.0f m\n", site.MixingDepthM)
				fmt.Fprintf(w, "Current Speed\t%.2f m/s\n", site.CurrentSpeedMPerS)
				fmt.Fprintf(w, "Sequestration Depth\t%.0f m\n", site.SequestrationDepthM)
			default:
				return fmt.Errorf("unknown preset kind %q (valid: strain, site)", kind)
			}

			return nil
		},
	}
}
