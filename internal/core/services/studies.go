package services

import (
	"context"

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
)

// Ensure StudyService implements the interface.
var _ driving.StudiesService = (*StudyService)(nil)

// StudyService manages experimental observations.
type StudyService struct {
	store driven.StudyStore
}

// NewStudyService creates a new study service.
func NewStudyService(store driven.StudyStore) *StudyService {
	return &StudyService{store: store}
}

// All returns every recorded study.
func (s *StudyService) All(ctx context.Context) ([]domain.Study, error) {
	return s.store.All(ctx)
}

// ByLabel returns studies concerning any of the given isotopes.
func (s *StudyService) ByLabel(ctx context.Context, labels []string) ([]domain.Study, error) {
	return s.store.ByLabel(ctx, labels)
}

// Add records a new observation.
func (s *StudyService) Add(ctx context.Context, study domain.Study) (domain.Study, error) {
	return s.store.Add(ctx, study)
}

// Path returns the studies file location.
func (s *StudyService) Path() string {
	return s.store.Path()
}

// Index groups every study by isotope label for annotation.
func (s *StudyService) Index(ctx context.Context) (map[string][]domain.Study, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string][]domain.Study)
	for _, study := range all {
		index[study.Label] = append(index[study.Label], study)
	}
	return index, nil
}
