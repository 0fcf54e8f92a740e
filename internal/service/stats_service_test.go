package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/class-marketplace/internal/repository"
)

type countingUserRepo struct {
	repository.UserRepository
	count int64
}

func (f *countingUserRepo) Count(_ context.Context) (int64, error) { return f.count, nil }

type countingCartRepo struct {
	repository.CartRepository
	count int64
}

func (f *countingCartRepo) Count(_ context.Context) (int64, error) { return f.count, nil }

type countingPaymentRepo struct {
	repository.PaymentRepository
	count   int64
	revenue float64
	err     error
}

func (f *countingPaymentRepo) Count(_ context.Context) (int64, error) {
	return f.count, f.err
}

func (f *countingPaymentRepo) TotalRevenue(_ context.Context) (float64, error) {
	return f.revenue, f.err
}

func TestStatsOverview(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(
		&countingUserRepo{count: 7},
		&countingCartRepo{count: 3},
		&countingPaymentRepo{count: 5, revenue: 125.50},
	)

	stats, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 7, stats.Users)
	require.EqualValues(t, 3, stats.CartItems)
	require.EqualValues(t, 5, stats.Payments)
	require.Equal(t, 125.50, stats.Revenue)
}

func TestStatsOverview_PropagatesStoreFailure(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(
		&countingUserRepo{count: 7},
		&countingCartRepo{count: 3},
		&countingPaymentRepo{err: errors.New("store down")},
	)

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
}
