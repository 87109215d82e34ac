package cmd

import (
	"github.com/spf13/cobra"
)

var planformCmd = &cobra.Command{
	Use:   "planform",
	Short: "Segmented wing planform analysis",
	Long: `Compute planform properties of segmented wings.

Subcommands:
  analyze    - Analyze a wing defined in a JSON, YAML or TOML file
  trapezoid  - Analyze a single straight-tapered wing from flags
  sweep      - Sweep a planform output over one or two wing parameters

Example YAML wing file:
  tag: main_wing
  root_chord: 7.76
  projected_span: 35.66
  symmetric: true
  segments:
    - {tag: root,   span_fraction: 0,     chord_fraction: 1,    quarter_chord_sweep: 25,    dihedral: 2.5, thickness_to_chord: 0.1}
    - {tag: yehudi, span_fraction: 0.324, chord_fraction: 0.5,  quarter_chord_sweep: 25,    dihedral: 5.5, thickness_to_chord: 0.1}
    - {tag: outer,  span_fraction: 0.963, chord_fraction: 0.22, quarter_chord_sweep: 56.75, dihedral: 5.5, thickness_to_chord: 0.1}
    - {tag: tip,    span_fraction: 1,     chord_fraction: 0.1,  thickness_to_chord: 0.1}

Angles are in degrees unless "angle_units: rad" is given; lengths are in
metres unless "length_units" is ft or in.`,
}

func init() {
	rootCmd.AddCommand(planformCmd)
}
