// Package studies provides a TOML file-backed implementation of the study
// store port. The file is seeded with the built-in catalogue of published
// isotopic-change observations on first use and stays user-editable.
package studies

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.StudyStore = (*Store)(nil)

// seedCatalogue is written to new study files. The entries are the isotopic
// shifts reported in the 2015 Lugano E-Cat test fuel analysis.
func seedCatalogue() []domain.Study {
	const (
		luganoRef  = "L15"
		luganoDesc = "2015 Lugano E-Cat test by Levi et al."
	)
	entries := []struct {
		label  string
		change domain.Change
	}{
		{"6Li", domain.ChangeIncrease},
		{"7Li", domain.ChangeDecrease},
		{"58Ni", domain.ChangeDecrease},
		{"60Ni", domain.ChangeDecrease},
		{"61Ni", domain.ChangeDecrease},
		{"62Ni", domain.ChangeIncrease},
	}

	catalogue := make([]domain.Study, 0, len(entries))
	for _, e := range entries {
		catalogue = append(catalogue, domain.Study{
			ID:          uuid.New().String(),
			Label:       e.label,
			Change:      e.change,
			Reference:   luganoRef,
			Description: luganoDesc,
		})
	}
	return catalogue
}

// tomlStudy is the on-disk shape of one entry.
type tomlStudy struct {
	ID          string `toml:"id"`
	Label       string `toml:"label"`
	Change      string `toml:"change"`
	Reference   string `toml:"reference"`
	Description string `toml:"description"`
}

// tomlFile is the on-disk shape of the study file.
type tomlFile struct {
	Studies []tomlStudy `toml:"studies"`
}

// Store is a TOML file-backed study store.
type Store struct {
	mu       sync.RWMutex
	filePath string
	studies  []domain.Study
}

// NewStore creates a study store backed by studies.toml in the given
// directory. If dir is empty, defaults to ~/.lenrmc. A missing file is
// created and seeded with the built-in catalogue.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".lenrmc")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating studies directory: %w", err)
	}

	s := &Store{filePath: filepath.Join(dir, "studies.toml")}

	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		s.studies = seedCatalogue()
		if err := s.save(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// All returns every study entry.
func (s *Store) All(_ context.Context) ([]domain.Study, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Study, len(s.studies))
	copy(out, s.studies)
	return out, nil
}

// ByLabel returns the entries concerning any of the given isotope labels.
func (s *Store) ByLabel(_ context.Context, labels []string) ([]domain.Study, error) {
	wanted := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		wanted[l] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Study
	for _, study := range s.studies {
		if _, ok := wanted[study.Label]; ok {
			out = append(out, study)
		}
	}
	return out, nil
}

// Add persists a new entry, assigning an ID when empty.
func (s *Store) Add(_ context.Context, study domain.Study) (domain.Study, error) {
	if study.Label == "" {
		return domain.Study{}, fmt.Errorf("study label is required: %w", domain.ErrInvalidInput)
	}
	if !study.Change.IsValid() {
		return domain.Study{}, fmt.Errorf("study change %q: %w", study.Change, domain.ErrInvalidInput)
	}
	if study.ID == "" {
		study.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.studies = append(s.studies, study)
	if err := s.save(); err != nil {
		return domain.Study{}, err
	}
	return study, nil
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.filePath
}

// load reads the study file into memory.
func (s *Store) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	studies := make([]domain.Study, 0, len(file.Studies))
	for _, e := range file.Studies {
		studies = append(studies, domain.Study{
			ID:          e.ID,
			Label:       e.Label,
			Change:      domain.Change(e.Change),
			Reference:   e.Reference,
			Description: e.Description,
		})
	}
	s.studies = studies
	return nil
}

// save writes the in-memory entries to disk (caller must hold lock).
func (s *Store) save() error {
	file := tomlFile{Studies: make([]tomlStudy, 0, len(s.studies))}
	for _, study := range s.studies {
		file.Studies = append(file.Studies, tomlStudy{
			ID:          study.ID,
			Label:       study.Label,
			Change:      string(study.Change),
			Reference:   study.Reference,
			Description: study.Description,
		})
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding studies: %w", err)
	}
	return os.WriteFile(s.filePath, data, 0600)
}
