package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/events"
	"github.com/spec-kit/class-marketplace/internal/repository"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

const classListCacheKey = "catalog:classes"

// CatalogCache is the read cache in front of the public class listing.
type CatalogCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// CatalogService serves the public catalog and the admin-only class
// mutations behind it.
type CatalogService struct {
	classes     repository.ClassRepository
	instructors repository.InstructorRepository
	cache       CatalogCache
	cacheTTL    time.Duration
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// CatalogDependencies bundles collaborators for the catalog service.
type CatalogDependencies struct {
	ClassRepo      repository.ClassRepository
	InstructorRepo repository.InstructorRepository
	Cache          CatalogCache
	CacheTTL       time.Duration
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		classes:     deps.ClassRepo,
		instructors: deps.InstructorRepo,
		cache:       deps.Cache,
		cacheTTL:    deps.CacheTTL,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
}

// ListClasses returns all classes, most enrolled first. The listing is
// the hottest public read, so it is served from the cache when
// possible; cache faults fall through to the database.
func (s *CatalogService) ListClasses(ctx context.Context) ([]*domain.Class, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, classListCacheKey); err == nil && cached != "" {
			var classes []*domain.Class
			if err := json.Unmarshal([]byte(cached), &classes); err == nil {
				return classes, nil
			}
		}
	}

	classes, err := s.classes.ListByEnrollment(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(classes); err == nil {
			if err := s.cache.Set(ctx, classListCacheKey, string(encoded), s.cacheTTL); err != nil {
				s.logger.Debug("class list cache write failed", zap.Error(err))
			}
		}
	}
	return classes, nil
}

// CreateClass adds a class to the catalog.
func (s *CatalogService) CreateClass(ctx context.Context, class *domain.Class) error {
	if class.Name == "" {
		return apperrors.NewValidationError("class name required", nil)
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return err
	}
	s.invalidateClassList(ctx)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventClassCreated,
			Actor:     class.InstructorEmail,
			Timestamp: time.Now(),
			Payload:   events.ClassCreatedPayload{ClassID: class.ID, Name: class.Name},
		})
	}
	return nil
}

// DeleteClass removes a class from the catalog.
func (s *CatalogService) DeleteClass(ctx context.Context, id string) error {
	if err := s.classes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateClassList(ctx)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventClassDeleted,
			Timestamp: time.Now(),
			Payload:   events.ClassDeletedPayload{ClassID: id},
		})
	}
	return nil
}

// ListInstructors returns the instructor directory.
func (s *CatalogService) ListInstructors(ctx context.Context) ([]*domain.Instructor, error) {
	return s.instructors.List(ctx)
}

func (s *CatalogService) invalidateClassList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, classListCacheKey); err != nil {
		s.logger.Debug("class list cache invalidation failed", zap.Error(err))
	}
}
