package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

var isotopesStable bool

var isotopesCmd = &cobra.Command{
	Use:   "isotopes [element|Z]",
	Short: "List the known isotopes of an element",
	Long: `Lists every table entry for an element, given by symbol ("Ni") or
atomic number ("28"), including isomeric levels.`,
	Args: cobra.ExactArgs(1),
	RunE: runIsotopes,
}

func init() {
	isotopesCmd.Flags().BoolVar(&isotopesStable, "stable", false, "only naturally occurring isotopes")
	rootCmd.AddCommand(isotopesCmd)
}

func runIsotopes(cmd *cobra.Command, args []string) error {
	if nuclideCatalog == nil {
		return errors.New("nuclide catalog not configured")
	}

	nuclides, err := nuclideCatalog.Isotopes(args[0], isotopesStable)
	if err != nil {
		return fmt.Errorf("listing isotopes of %q: %w", args[0], err)
	}
	if len(nuclides) == 0 {
		cmd.Println("No isotopes found.")
		return nil
	}

	printTable(cmd, isotopeTable(nuclides))
	return nil
}

func isotopeTable(nuclides []*domain.Nuclide) []string {
	lines := make([]string, 0, len(nuclides)+1)
	lines = append(lines, fmt.Sprintf("%-10s%4s%5s%19s%11s  %-12s%s",
		"Label", "A", "Z", "Mass excess (keV)", "Abundance", "Half-life", "Spin"))
	for _, n := range nuclides {
		abundance := ""
		if n.IsotopicAbundance > 0 {
			abundance = fmt.Sprintf("%.4g%%", n.IsotopicAbundance)
		}
		line := fmt.Sprintf("%-10s%4d%5d%19.3f%11s  %-12s%s",
			n.FullLabel(),
			n.MassNumber,
			n.AtomicNumber,
			n.MassExcessKev,
			abundance,
			strings.TrimSpace(n.HalfLife.String()),
			n.SpinParity)
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}
