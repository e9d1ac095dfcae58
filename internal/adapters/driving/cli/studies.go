package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

var (
	studyLabel       string
	studyChange      string
	studyRef         string
	studyDescription string
)

var studiesCmd = &cobra.Command{
	Use:   "studies [labels...]",
	Short: "List experimental observations",
	Long: `Lists the recorded experimental observations, optionally restricted
to the given isotope labels.`,
	RunE: runStudies,
}

var studiesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new observation",
	RunE:  runStudiesAdd,
}

func init() {
	studiesAddCmd.Flags().StringVar(&studyLabel, "label", "", "isotope label, e.g. 6Li")
	studiesAddCmd.Flags().StringVar(&studyChange, "change", "", `observed direction: "increase" or "decrease"`)
	studiesAddCmd.Flags().StringVar(&studyRef, "ref", "", "short citation tag, e.g. L15")
	studiesAddCmd.Flags().StringVar(&studyDescription, "description", "", "one-line summary of the experiment")
	studiesCmd.AddCommand(studiesAddCmd)
	rootCmd.AddCommand(studiesCmd)
}

func runStudies(cmd *cobra.Command, args []string) error {
	if studiesService == nil {
		return errors.New("studies service not configured")
	}

	var (
		entries []domain.Study
		err     error
	)
	if len(args) > 0 {
		entries, err = studiesService.ByLabel(cmd.Context(), args)
	} else {
		entries, err = studiesService.All(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("listing studies: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No studies found.")
		return nil
	}

	printTable(cmd, studyTable(entries))
	return nil
}

func runStudiesAdd(cmd *cobra.Command, _ []string) error {
	if studiesService == nil {
		return errors.New("studies service not configured")
	}

	study := domain.Study{
		Label:       strings.TrimSpace(studyLabel),
		Change:      domain.Change(strings.TrimSpace(studyChange)),
		Reference:   strings.TrimSpace(studyRef),
		Description: strings.TrimSpace(studyDescription),
	}

	added, err := studiesService.Add(cmd.Context(), study)
	if err != nil {
		return fmt.Errorf("recording study: %w", err)
	}

	cmd.Printf("Recorded %s %s %s [%s]\n", added.Change.Mark(), added.Label, added.Change, added.Reference)
	return nil
}

func studyTable(entries []domain.Study) []string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, fmt.Sprintf("%-10s%-12s%-8s%s", "Label", "Change", "Ref", "Description"))
	for _, s := range entries {
		line := fmt.Sprintf("%-10s%-12s%-8s%s", s.Label, s.Change, s.Reference, s.Description)
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}
