package domain

import "strings"

const unknownDescription = "Unknown"

// CacheEngine identifies a reaction cache backend.
type CacheEngine string

// Available cache engines.
const (
	// CacheEngineSQLite is the file-backed default.
	CacheEngineSQLite CacheEngine = "sqlite"

	// CacheEnginePostgres is a shared server-backed cache.
	CacheEnginePostgres CacheEngine = "postgres"

	// CacheEngineMemory keeps results for the process lifetime only.
	CacheEngineMemory CacheEngine = "memory"
)

// IsValid returns true if the cache engine is recognised.
func (e CacheEngine) IsValid() bool {
	switch e {
	case CacheEngineSQLite, CacheEnginePostgres, CacheEngineMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (e CacheEngine) String() string {
	return string(e)
}

// Description returns a human-readable description of the engine.
func (e CacheEngine) Description() string {
	switch e {
	case CacheEngineSQLite:
		return "SQLite (local file)"
	case CacheEnginePostgres:
		return "PostgreSQL (shared server)"
	case CacheEngineMemory:
		return "Memory (process lifetime)"
	default:
		return unknownDescription
	}
}

// EngineForDSN infers the cache engine from a connection string.
// An empty DSN selects the SQLite default; a path is treated as a
// SQLite file.
func EngineForDSN(dsn string) CacheEngine {
	switch {
	case dsn == "" || dsn == string(CacheEngineSQLite):
		return CacheEngineSQLite
	case dsn == string(CacheEngineMemory):
		return CacheEngineMemory
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		return CacheEnginePostgres
	case strings.HasPrefix(dsn, "sqlite://"):
		return CacheEngineSQLite
	default:
		return CacheEngineSQLite
	}
}

// Settings keys understood by the configuration store.
const (
	SettingDataPath    = "data.path"
	SettingCacheDSN    = "cache.dsn"
	SettingStudiesPath = "studies.path"
	SettingLowerBound  = "reactions.lower_bound_kev"
	SettingScreening   = "decay.screening"
	SettingMoles       = "decay.moles"
	SettingVerbose     = "logs.verbose"
)

// AppSettings holds all application settings.
type AppSettings struct {
	// DataPath points at a nuclide table file. Empty uses the embedded
	// excerpt.
	DataPath string

	// CacheDSN selects the reaction cache backend; see EngineForDSN.
	CacheDSN string

	// StudiesPath points at the directory holding the studies file.
	// Empty uses the default location under the home directory.
	StudiesPath string

	// LowerBoundKev is the default enumeration cutoff in keV.
	// Zero means no cutoff.
	LowerBoundKev float64

	// Screening is the default electron screening for decay scenarios.
	Screening float64

	// Moles is the default starting quantity for decay scenarios.
	Moles float64

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Moles: 1.0,
	}
}

// AllCacheEngines returns all available cache engines.
func AllCacheEngines() []CacheEngine {
	return []CacheEngine{
		CacheEngineSQLite,
		CacheEnginePostgres,
		CacheEngineMemory,
	}
}
