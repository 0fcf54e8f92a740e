package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/events"
	"github.com/spec-kit/class-marketplace/internal/repository"
)

type fakeClassRepo struct {
	repository.ClassRepository

	classes   []*domain.Class
	listCalls int
}

func (f *fakeClassRepo) ListByEnrollment(_ context.Context) ([]*domain.Class, error) {
	f.listCalls++
	return f.classes, nil
}

func (f *fakeClassRepo) Create(_ context.Context, class *domain.Class) error {
	class.ID = "cls-new"
	f.classes = append(f.classes, class)
	return nil
}

func (f *fakeClassRepo) Delete(_ context.Context, id string) error {
	for i, class := range f.classes {
		if class.ID == id {
			f.classes = append(f.classes[:i], f.classes[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeCache struct {
	values map[string]string
	gets   int
	dels   []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.gets++
	return f.values[key], nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
		f.dels = append(f.dels, key)
	}
	return nil
}

func newCatalog(classes *fakeClassRepo, cache CatalogCache) *CatalogService {
	return NewCatalogService(CatalogDependencies{
		ClassRepo:  classes,
		Cache:      cache,
		CacheTTL:   time.Minute,
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     zap.NewNop(),
	})
}

func TestListClasses_PopulatesAndServesCache(t *testing.T) {
	t.Parallel()

	classes := &fakeClassRepo{classes: []*domain.Class{
		{ID: "c1", Name: "Watercolor", EnrolledStudents: 40},
		{ID: "c2", Name: "Sketching", EnrolledStudents: 12},
	}}
	cache := newFakeCache()
	svc := newCatalog(classes, cache)

	first, err := svc.ListClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, 1, classes.listCalls)

	// Second read comes from the cache.
	second, err := svc.ListClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Equal(t, 1, classes.listCalls)
	require.Equal(t, "Watercolor", second[0].Name)
}

func TestListClasses_CorruptCacheFallsThrough(t *testing.T) {
	t.Parallel()

	classes := &fakeClassRepo{classes: []*domain.Class{{ID: "c1", Name: "Oil Painting"}}}
	cache := newFakeCache()
	cache.values[classListCacheKey] = "{not json"
	svc := newCatalog(classes, cache)

	out, err := svc.ListClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, 1, classes.listCalls)
}

func TestCreateClass_InvalidatesCache(t *testing.T) {
	t.Parallel()

	classes := &fakeClassRepo{}
	cache := newFakeCache()
	encoded, err := json.Marshal([]*domain.Class{})
	require.NoError(t, err)
	cache.values[classListCacheKey] = string(encoded)

	svc := newCatalog(classes, cache)
	require.NoError(t, svc.CreateClass(context.Background(), &domain.Class{Name: "Pottery"}))
	require.Contains(t, cache.dels, classListCacheKey)
}

func TestCreateClass_RequiresName(t *testing.T) {
	t.Parallel()

	svc := newCatalog(&fakeClassRepo{}, newFakeCache())
	err := svc.CreateClass(context.Background(), &domain.Class{})
	require.Error(t, err)
}

func TestDeleteClass_InvalidatesCacheAndReportsMissing(t *testing.T) {
	t.Parallel()

	classes := &fakeClassRepo{classes: []*domain.Class{{ID: "c1"}}}
	cache := newFakeCache()
	svc := newCatalog(classes, cache)

	require.NoError(t, svc.DeleteClass(context.Background(), "c1"))
	require.Contains(t, cache.dels, classListCacheKey)

	err := svc.DeleteClass(context.Background(), "c1")
	require.Error(t, err)
	require.True(t, errors.Is(err, pgx.ErrNoRows))
}
