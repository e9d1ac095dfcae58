package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emwalker/lenrmc/internal/adapters/driven/config/file"
	"github.com/emwalker/lenrmc/internal/adapters/driven/nubase"
	"github.com/emwalker/lenrmc/internal/adapters/driven/storage/memory"
	"github.com/emwalker/lenrmc/internal/adapters/driven/storage/postgres"
	"github.com/emwalker/lenrmc/internal/adapters/driven/storage/sqlite"
	"github.com/emwalker/lenrmc/internal/adapters/driven/studies"
	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
	"github.com/emwalker/lenrmc/internal/core/services"
	"github.com/emwalker/lenrmc/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services the commands call. Wired by initServices on first use, or
// injected through SetServices by tests and embedders.
var (
	enumerationService driving.EnumerationService
	decayService       driving.DecayService
	nuclideCatalog     driving.NuclideCatalog
	studiesService     driving.StudiesService
	settingsService    driving.SettingsService
	reactionCache      driven.ReactionCache

	// appSettings holds the effective settings after flag overrides.
	appSettings = domain.DefaultAppSettings()

	servicesWired bool

	// ownedCache is set only when initServices opened the cache itself,
	// so injected caches are never closed from here.
	ownedCache driven.ReactionCache
)

var (
	flagVerbose  bool
	flagData     string
	flagCacheDSN string
)

var rootCmd = &cobra.Command{
	Use:   "lenrmc",
	Short: "Nuclear reaction enumeration and decay kinetics",
	Long: `lenrmc enumerates the candidate nuclear reactions of a set of
reactants against the tabulated mass surface, and models the kinetics
of the two-body decay channels it finds.

Reactant specifications name nuclides ("p+7Li", "d+d") or elements
("H+Li"), which expand to their naturally occurring isotopes. Excited
levels are addressed with a slash, as in "7Li/i".`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return closeOwnedCache()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "path to a nuclide table file (default: embedded table)")
	rootCmd.PersistentFlags().StringVar(&flagCacheDSN, "cache-dsn", "", `reaction cache DSN: sqlite://DIR, postgres://..., or "memory"`)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Services bundles the ports the CLI drives. Tests and alternative
// entry points inject their own implementations through SetServices.
type Services struct {
	Enumeration driving.EnumerationService
	Decay       driving.DecayService
	Nuclides    driving.NuclideCatalog
	Studies     driving.StudiesService
	Settings    driving.SettingsService
	Cache       driven.ReactionCache
}

// SetServices installs the given implementations and stops the root
// command from constructing its own adapters.
func SetServices(s *Services) {
	enumerationService = s.Enumeration
	decayService = s.Decay
	nuclideCatalog = s.Nuclides
	studiesService = s.Studies
	settingsService = s.Settings
	reactionCache = s.Cache
	ownedCache = nil
	servicesWired = true
}

// initServices wires the default adapters unless services were already
// injected. Command-line flags override stored settings.
func initServices(cmd *cobra.Command, _ []string) error {
	if servicesWired {
		if flagVerbose {
			logger.SetVerbose(true)
		}
		return nil
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if flagData != "" {
		settings.DataPath = flagData
	}
	if flagCacheDSN != "" {
		settings.CacheDSN = flagCacheDSN
	}
	logger.SetVerbose(flagVerbose || settings.Verbose)
	appSettings = *settings

	cache := openReactionCache(cmd, settings.CacheDSN)

	studyStore, err := studies.NewStore(settings.StudiesPath)
	if err != nil {
		return fmt.Errorf("opening study store: %w", err)
	}

	source := nubase.NewSource(settings.DataPath)
	enumerationService = services.NewEnumerationService(source, cache)
	decayService = services.NewDecayService(enumerationService)
	nuclideCatalog = services.NewNuclideService(source)
	studiesService = services.NewStudyService(studyStore)
	reactionCache = cache
	ownedCache = cache
	servicesWired = true

	return nil
}

// openReactionCache opens the backend the DSN selects. An unreachable
// backend degrades to uncached enumeration with a warning.
func openReactionCache(cmd *cobra.Command, dsn string) driven.ReactionCache {
	switch domain.EngineForDSN(dsn) {
	case domain.CacheEnginePostgres:
		store, err := postgres.NewStore(cmd.Context(), dsn)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: reaction cache unavailable, continuing without it: %v\n", err)
			return nil
		}
		return store
	case domain.CacheEngineMemory:
		return memory.NewReactionCache()
	default:
		store, err := sqlite.NewStore(sqliteDataDir(dsn))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: reaction cache unavailable, continuing without it: %v\n", err)
			return nil
		}
		return store.ReactionCache()
	}
}

// sqliteDataDir extracts the cache directory from a sqlite DSN. An
// empty result selects the default location under the home directory.
func sqliteDataDir(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return strings.TrimPrefix(dsn, "sqlite://")
	case dsn == "" || dsn == string(domain.CacheEngineSQLite):
		return ""
	default:
		return dsn
	}
}

func closeOwnedCache() error {
	if ownedCache == nil {
		return nil
	}
	err := ownedCache.Close()
	ownedCache = nil
	return err
}
