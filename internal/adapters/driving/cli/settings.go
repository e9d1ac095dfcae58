package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the nuclide table location, the reaction cache
backend, and the default enumeration and decay parameters.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Update a single setting",
	Long: `Update a single setting by its dotted key.

Keys:
  data.path                  path to a nuclide table file
  cache.dsn                  reaction cache DSN (sqlite://DIR, postgres://..., "memory")
  studies.path               directory holding the studies file
  reactions.lower_bound_kev  default enumeration cutoff in keV
  decay.screening            default electron screening for decay scenarios
  decay.moles                default starting quantity in moles
  logs.verbose               enable debug logging (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Data]")
	cmd.Printf("  Nuclide table: %s\n", orDefault(settings.DataPath, "(embedded)"))
	cmd.Printf("  Studies path:  %s\n", orDefault(settings.StudiesPath, "(default)"))
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  DSN:    %s\n", orDefault(settings.CacheDSN, "(default)"))
	cmd.Printf("  Engine: %s\n", domain.EngineForDSN(settings.CacheDSN).Description())
	cmd.Println()

	cmd.Println("[Enumeration]")
	if settings.LowerBoundKev != 0 {
		cmd.Printf("  Lower bound: %g keV\n", settings.LowerBoundKev)
	} else {
		cmd.Printf("  Lower bound: (none)\n")
	}
	cmd.Println()

	cmd.Println("[Decay]")
	cmd.Printf("  Screening: %g\n", settings.Screening)
	cmd.Printf("  Moles:     %g\n", settings.Moles)
	cmd.Println()

	cmd.Println("[Logs]")
	cmd.Printf("  Verbose: %t\n", settings.Verbose)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
