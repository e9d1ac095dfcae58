package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

var (
	reactionsLowerBound string
	reactionsSpins      bool
	reactionsReferences bool
	reactionsJSON       bool
	reactionsCSV        string
	reactionsNoCache    bool
)

var reactionsCmd = &cobra.Command{
	Use:   "reactions [spec]",
	Short: "Enumerate candidate reactions for a reactant spec",
	Long: `Enumerates every way the reactants can recombine into known nuclides,
with the Q value of each outcome.

The spec names nuclides ("p+7Li") or elements ("H+Li"); elements expand
to their naturally occurring isotopes. Systems separated by commas are
enumerated together.`,
	Args: cobra.ExactArgs(1),
	RunE: runReactions,
}

func init() {
	reactionsCmd.Flags().StringVarP(&reactionsLowerBound, "lower-bound", "b", "", "keep reactions with a Q value strictly above this many keV")
	reactionsCmd.Flags().BoolVar(&reactionsSpins, "spins", false, "show spin and parity columns")
	reactionsCmd.Flags().BoolVar(&reactionsReferences, "references", false, "annotate reactions with experimental observations")
	reactionsCmd.Flags().BoolVar(&reactionsJSON, "json", false, "output reactions as JSON")
	reactionsCmd.Flags().StringVar(&reactionsCSV, "csv", "", "write reactions to a CSV file")
	reactionsCmd.Flags().BoolVar(&reactionsNoCache, "no-cache", false, "bypass the reaction cache")
	rootCmd.AddCommand(reactionsCmd)
}

func runReactions(cmd *cobra.Command, args []string) error {
	if enumerationService == nil {
		return errors.New("enumeration service not configured")
	}

	opts, err := reactionOptions()
	if err != nil {
		return err
	}

	enumeration, err := enumerationService.Enumerate(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("enumerating %q: %w", args[0], err)
	}
	reactions := domain.SortReactionsForDisplay(enumeration.Reactions())

	if reactionsCSV != "" {
		if err := writeReactionCSV(reactionsCSV, reactions); err != nil {
			return err
		}
		cmd.Printf("Wrote %d reactions to %s\n", len(reactions), reactionsCSV)
		return nil
	}

	if reactionsJSON {
		return outputReactionJSON(cmd, reactions)
	}

	if len(reactions) == 0 {
		cmd.Println("No reactions found.")
		return nil
	}

	if reactionsReferences {
		if studiesService == nil {
			return errors.New("studies service not configured")
		}
		index, err := studiesService.Index(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading studies: %w", err)
		}
		printTable(cmd, studiesTable(reactions, index))
		return nil
	}

	if reactionsSpins {
		printTable(cmd, spinsTable(reactions))
		return nil
	}

	printTable(cmd, reactionTable(reactions))
	return nil
}

// reactionOptions builds enumeration options from the command flags,
// falling back to the stored default cutoff when no flag is given.
func reactionOptions() (domain.EnumerationOptions, error) {
	opts := domain.EnumerationOptions{SkipCache: reactionsNoCache}
	switch {
	case reactionsLowerBound != "":
		bound, err := strconv.ParseFloat(reactionsLowerBound, 64)
		if err != nil {
			return opts, fmt.Errorf("parsing lower bound %q: %w", reactionsLowerBound, domain.ErrInvalidInput)
		}
		opts.LowerBoundKev = &bound
	case appSettings.LowerBoundKev != 0:
		bound := appSettings.LowerBoundKev
		opts.LowerBoundKev = &bound
	}
	return opts, nil
}

type reactionJSON struct {
	Reaction string   `json:"reaction"`
	QKev     float64  `json:"q_kev"`
	Notes    []string `json:"notes"`
}

func outputReactionJSON(cmd *cobra.Command, reactions []*domain.Reaction) error {
	rows := make([]reactionJSON, 0, len(reactions))
	for _, r := range reactions {
		rows = append(rows, reactionJSON{
			Reaction: r.String(),
			QKev:     r.QValueKev(),
			Notes:    r.Notes(),
		})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reactions: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func writeReactionCSV(path string, reactions []*domain.Reaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"reaction", "q_kev", "notes"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range reactions {
		record := []string{
			r.String(),
			strconv.FormatFloat(r.QValueKev(), 'f', -1, 64),
			notesColumn(r),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
