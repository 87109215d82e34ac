package cmd

import (
	"github.com/alexiusacademia/gowing/internal/planform"
	"github.com/spf13/cobra"
)

var (
	analyzeFile        string
	analyzeShowPanels  bool
	analyzeShowDiagram bool
	analyzeExportFile  string
)

var planformAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a segmented wing defined in a file",
	Long: `Compute the planform properties of a segmented wing defined in a
JSON, YAML or TOML file.

Examples:
  gowing planform analyze --file main_wing.yaml
  gowing planform analyze -f main_wing.json --panels --diagram
  gowing planform analyze -f main_wing.toml -o planform.png`,
	Run: runPlanformAnalyze,
}

func init() {
	planformCmd.AddCommand(planformAnalyzeCmd)

	planformAnalyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to wing definition file [required]")
	planformAnalyzeCmd.MarkFlagRequired("file")

	planformAnalyzeCmd.Flags().BoolVar(&analyzeShowPanels, "panels", false, "Show per-panel breakdown")
	planformAnalyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII planform diagram")
	planformAnalyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runPlanformAnalyze(cmd *cobra.Command, args []string) {
	wing, err := planform.LoadFromFile(analyzeFile)
	if err != nil {
		logger.Error().Err(err).Str("file", analyzeFile).Msg("loading wing failed")
		return
	}
	logger.Debug().Str("file", analyzeFile).Int("segments", len(wing.Segments)).Msg("wing loaded")

	reportPlanform("SEGMENTED WING PLANFORM ANALYSIS", wing, analyzeShowPanels, analyzeShowDiagram, analyzeExportFile)
}
