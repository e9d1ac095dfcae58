package services

import (
	"fmt"
	"strconv"

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		DataPath:      s.getString(domain.SettingDataPath, defaults.DataPath),
		CacheDSN:      s.getString(domain.SettingCacheDSN, defaults.CacheDSN),
		StudiesPath:   s.getString(domain.SettingStudiesPath, defaults.StudiesPath),
		LowerBoundKev: s.getFloat(domain.SettingLowerBound, defaults.LowerBoundKev),
		Screening:     s.getFloat(domain.SettingScreening, defaults.Screening),
		Moles:         s.getFloat(domain.SettingMoles, defaults.Moles),
		Verbose:       s.getBool(domain.SettingVerbose, defaults.Verbose),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(domain.SettingDataPath, settings.DataPath); err != nil {
		return fmt.Errorf("save data path: %w", err)
	}
	if err := s.configStore.Set(domain.SettingCacheDSN, settings.CacheDSN); err != nil {
		return fmt.Errorf("save cache dsn: %w", err)
	}
	if err := s.configStore.Set(domain.SettingStudiesPath, settings.StudiesPath); err != nil {
		return fmt.Errorf("save studies path: %w", err)
	}
	if err := s.configStore.Set(domain.SettingLowerBound, settings.LowerBoundKev); err != nil {
		return fmt.Errorf("save lower bound: %w", err)
	}
	if err := s.configStore.Set(domain.SettingScreening, settings.Screening); err != nil {
		return fmt.Errorf("save screening: %w", err)
	}
	if err := s.configStore.Set(domain.SettingMoles, settings.Moles); err != nil {
		return fmt.Errorf("save moles: %w", err)
	}
	if err := s.configStore.Set(domain.SettingVerbose, settings.Verbose); err != nil {
		return fmt.Errorf("save verbose: %w", err)
	}
	return nil
}

// Set updates a single setting by its dotted key, parsing the value
// according to the key's type.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case domain.SettingDataPath, domain.SettingCacheDSN, domain.SettingStudiesPath:
		return s.configStore.Set(key, value)

	case domain.SettingLowerBound, domain.SettingScreening, domain.SettingMoles:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("setting %s expects a number, got %q: %w", key, value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, f)

	case domain.SettingVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("setting %s expects a boolean, got %q: %w", key, value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, b)

	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
