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
	decayMoles            string
	decaySeconds          string
	decayScreening        string
	decayIsotopicFraction string
	decayActiveFraction   string
	decayLowerBound       string
	decayJSON             bool
	decayCSV              string
)

var decayCmd = &cobra.Command{
	Use:   "decay [spec]",
	Short: "Model the decay kinetics of a parent nuclide",
	Long: `Enumerates the exothermic two-body breakup channels of the parents
named in the spec and evolves a starting quantity through them, using
Gamow tunneling through the Coulomb barrier for each channel's rate.

Electron screening lowers the barrier; the elapsed time depletes the
inventory through each parent's total decay constant.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecay,
}

func init() {
	decayCmd.Flags().StringVar(&decayMoles, "moles", "", "starting quantity in moles")
	decayCmd.Flags().StringVar(&decaySeconds, "seconds", "", "elapsed time in seconds")
	decayCmd.Flags().StringVar(&decayScreening, "screening", "", "electron screening energy in units of e^2/r")
	decayCmd.Flags().StringVar(&decayIsotopicFraction, "isotopic-fraction", "", "override the natural abundance fraction (0..1)")
	decayCmd.Flags().StringVar(&decayActiveFraction, "active-fraction", "", "fraction of the inventory that participates (0..1)")
	decayCmd.Flags().StringVar(&decayLowerBound, "lower-bound", "", "keep channels with a Q value strictly above this many keV")
	decayCmd.Flags().BoolVar(&decayJSON, "json", false, "output the scenario as JSON")
	decayCmd.Flags().StringVar(&decayCSV, "csv", "", "write the per-channel table to a CSV file")
	rootCmd.AddCommand(decayCmd)
}

func runDecay(cmd *cobra.Command, args []string) error {
	if decayService == nil {
		return errors.New("decay service not configured")
	}

	opts, err := scenarioOptions()
	if err != nil {
		return err
	}
	enum, err := decayEnumerationOptions()
	if err != nil {
		return err
	}

	scenario, err := decayService.Scenario(cmd.Context(), args[0], opts, enum)
	if err != nil {
		return fmt.Errorf("building decay scenario for %q: %w", args[0], err)
	}

	if decayCSV != "" {
		if err := writeDecayCSV(decayCSV, scenario.Rows); err != nil {
			return err
		}
		cmd.Printf("Wrote %d channels to %s\n", len(scenario.Rows), decayCSV)
		return nil
	}

	if decayJSON {
		return outputDecayJSON(cmd, args[0], scenario)
	}

	cmd.Printf("Decay scenario for %q\n", args[0])
	cmd.Printf("  Moles:           %g\n", opts.MolarQuantity)
	cmd.Printf("  Elapsed:         %g s\n", opts.ElapsedSeconds)
	cmd.Printf("  Screening:       %g\n", opts.Screening)
	cmd.Println()

	if len(scenario.Rows) == 0 {
		cmd.Println("No decay channels found.")
		return nil
	}

	cmd.Printf("  Channels:        %d\n", len(scenario.Rows))
	cmd.Printf("  Remaining atoms: %.6g\n", scenario.RemainingActiveAtoms())
	cmd.Printf("  Activity:        %.6g Bq\n", scenario.Activity())
	cmd.Printf("  Power:           %s\n", scenario.Power())
	cmd.Println()

	printTable(cmd, decayTable(scenario.Rows))
	return nil
}

// scenarioOptions builds scenario options from the command flags,
// falling back to stored defaults for moles and screening.
func scenarioOptions() (domain.ScenarioOptions, error) {
	opts := domain.ScenarioOptions{
		MolarQuantity: appSettings.Moles,
		Screening:     appSettings.Screening,
	}

	if decayMoles != "" {
		v, err := parseDecayValue("moles", decayMoles)
		if err != nil {
			return opts, err
		}
		opts.MolarQuantity = v
	}
	if decaySeconds != "" {
		v, err := parseDecayValue("seconds", decaySeconds)
		if err != nil {
			return opts, err
		}
		opts.ElapsedSeconds = v
	}
	if decayScreening != "" {
		v, err := parseDecayValue("screening", decayScreening)
		if err != nil {
			return opts, err
		}
		opts.Screening = v
	}
	if decayIsotopicFraction != "" {
		v, err := parseDecayValue("isotopic-fraction", decayIsotopicFraction)
		if err != nil {
			return opts, err
		}
		opts.IsotopicFraction = &v
	}
	if decayActiveFraction != "" {
		v, err := parseDecayValue("active-fraction", decayActiveFraction)
		if err != nil {
			return opts, err
		}
		opts.ActiveFraction = &v
	}

	return opts, nil
}

// decayEnumerationOptions restricts enumeration to two-body channels.
func decayEnumerationOptions() (domain.EnumerationOptions, error) {
	opts := domain.EnumerationOptions{DaughterCount: 2}
	if decayLowerBound != "" {
		bound, err := parseDecayValue("lower-bound", decayLowerBound)
		if err != nil {
			return opts, err
		}
		opts.LowerBoundKev = &bound
	}
	return opts, nil
}

func parseDecayValue(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", name, value, domain.ErrInvalidInput)
	}
	return v, nil
}

func decayTable(rows []domain.ScenarioRow) []string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, fmt.Sprintf("%-30s%8s  %-13s%-15s%-15s%s",
		"Channel", "Q (MeV)", "Tunneling", "Half-life (s)", "Activity (Bq)", "Power"))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-30s%8.3f  %-13.3g%-15.3g%-15.3g%s",
			row.Channel(),
			row.QValueMev,
			row.TunnelingProbability,
			row.PartialHalfLifeS,
			row.PartialActivity,
			domain.Power{Watts: row.Watts}))
	}
	return lines
}

type decayChannelJSON struct {
	Channel              string  `json:"channel"`
	QMev                 float64 `json:"q_mev"`
	TunnelingProbability float64 `json:"tunneling_probability"`
	PartialHalfLifeS     float64 `json:"partial_half_life_s"`
	PartialActivityBq    float64 `json:"partial_activity_bq"`
	Watts                float64 `json:"watts"`
}

type decayScenarioJSON struct {
	Spec                 string             `json:"spec"`
	Moles                float64            `json:"moles"`
	ElapsedSeconds       float64            `json:"elapsed_seconds"`
	Screening            float64            `json:"screening"`
	RemainingActiveAtoms float64            `json:"remaining_active_atoms"`
	ActivityBq           float64            `json:"activity_bq"`
	PowerW               float64            `json:"power_w"`
	Channels             []decayChannelJSON `json:"channels"`
}

func outputDecayJSON(cmd *cobra.Command, spec string, scenario *domain.DecayScenario) error {
	opts := scenario.Options()
	out := decayScenarioJSON{
		Spec:                 spec,
		Moles:                opts.MolarQuantity,
		ElapsedSeconds:       opts.ElapsedSeconds,
		Screening:            opts.Screening,
		RemainingActiveAtoms: scenario.RemainingActiveAtoms(),
		ActivityBq:           scenario.Activity(),
		PowerW:               scenario.Power().Watts,
		Channels:             make([]decayChannelJSON, 0, len(scenario.Rows)),
	}
	for _, row := range scenario.Rows {
		out.Channels = append(out.Channels, decayChannelJSON{
			Channel:              row.Channel(),
			QMev:                 row.QValueMev,
			TunnelingProbability: row.TunnelingProbability,
			PartialHalfLifeS:     row.PartialHalfLifeS,
			PartialActivityBq:    row.PartialActivity,
			Watts:                row.Watts,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func writeDecayCSV(path string, rows []domain.ScenarioRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"channel", "q_mev", "tunneling_probability", "partial_half_life_s", "partial_activity_bq", "watts"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Channel(),
			strconv.FormatFloat(row.QValueMev, 'f', -1, 64),
			strconv.FormatFloat(row.TunnelingProbability, 'g', -1, 64),
			strconv.FormatFloat(row.PartialHalfLifeS, 'g', -1, 64),
			strconv.FormatFloat(row.PartialActivity, 'g', -1, 64),
			strconv.FormatFloat(row.Watts, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
