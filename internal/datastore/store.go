package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nfrund/folio/internal/domain"
)

// Store holds the works and profile for one page render. It is created by a
// Loader, initialized once, and read-only afterwards.
type Store struct {
	source  Source
	logger  *slog.Logger
	works   []domain.Work
	profile *domain.Profile

	profileDefaulted bool
}

// NewStore creates an uninitialized Store reading from source.
func NewStore(source Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{source: source, logger: logger}
}

// Initialize loads the works and then the profile. It reports false when the
// works could not be loaded; in that case the store holds an empty work list
// and the default profile. A profile failure alone is recovered with the
// default profile and does not fail initialization.
func (s *Store) Initialize(ctx context.Context) bool {
	works, err := s.loadWorks(ctx)
	if err != nil {
		s.logger.Error("Failed to load works", "error", err)
		s.works = []domain.Work{}
		s.setDefaultProfile()
		return false
	}
	s.works = works
	s.logger.Debug("Works loaded", "count", len(works))

	profile, err := s.loadProfile(ctx)
	if err != nil {
		s.logger.Warn("Failed to load profile, using default", "error", err)
		s.setDefaultProfile()
		return true
	}
	s.profile = &profile
	return true
}

func (s *Store) loadWorks(ctx context.Context) ([]domain.Work, error) {
	data, err := s.source.Works(ctx)
	if err != nil {
		return nil, err
	}
	var file domain.WorksFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", WorksFile, err)
	}
	if file.Works == nil {
		return []domain.Work{}, nil
	}
	return file.Works, nil
}

func (s *Store) loadProfile(ctx context.Context) (domain.Profile, error) {
	data, err := s.source.Profile(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to decode %s: %w", ProfileFile, err)
	}
	return profile, nil
}

func (s *Store) setDefaultProfile() {
	p := DefaultProfile()
	s.profile = &p
	s.profileDefaulted = true
}

// UsingDefaultProfile reports whether initialization fell back to the default
// profile.
func (s *Store) UsingDefaultProfile() bool {
	return s.profileDefaulted
}

// Works returns all works in source order.
func (s *Store) Works() []domain.Work {
	if s.works == nil {
		return []domain.Work{}
	}
	return s.works
}

// WorksByCategory returns the works of one category. "all" returns every work.
func (s *Store) WorksByCategory(category domain.Category) []domain.Work {
	if category == domain.CategoryAll {
		return s.Works()
	}
	filtered := []domain.Work{}
	for _, w := range s.Works() {
		if w.Category == category {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// WorkByID returns the first work with the given id.
func (s *Store) WorkByID(id int) (domain.Work, bool) {
	for _, w := range s.Works() {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Work{}, false
}

// WorkByFilename returns the first work with the given filename.
func (s *Store) WorkByFilename(filename string) (domain.Work, bool) {
	for _, w := range s.Works() {
		if w.Filename == filename {
			return w, true
		}
	}
	return domain.Work{}, false
}

// FeaturedWorks returns the first count works. A non-positive count yields
// an empty list.
func (s *Store) FeaturedWorks(count int) []domain.Work {
	works := s.Works()
	if count <= 0 {
		return works[:0]
	}
	if count > len(works) {
		count = len(works)
	}
	return works[:count]
}

// Profile returns the loaded profile, or the default one.
func (s *Store) Profile() domain.Profile {
	if s.profile == nil {
		return DefaultProfile()
	}
	return *s.profile
}
