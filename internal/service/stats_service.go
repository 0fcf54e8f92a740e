package service

import (
	"context"

	"github.com/spec-kit/class-marketplace/internal/repository"
)

// AdminStats summarizes marketplace activity for the admin dashboard.
type AdminStats struct {
	Users     int64
	CartItems int64
	Payments  int64
	Revenue   float64
}

// StatsService aggregates counts across collections.
type StatsService struct {
	users    repository.UserRepository
	carts    repository.CartRepository
	payments repository.PaymentRepository
}

// NewStatsService constructs the service.
func NewStatsService(users repository.UserRepository, carts repository.CartRepository, payments repository.PaymentRepository) *StatsService {
	return &StatsService{users: users, carts: carts, payments: payments}
}

// Overview computes the dashboard numbers.
func (s *StatsService) Overview(ctx context.Context) (*AdminStats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	cartCount, err := s.carts.Count(ctx)
	if err != nil {
		return nil, err
	}
	paymentCount, err := s.payments.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		Users:     userCount,
		CartItems: cartCount,
		Payments:  paymentCount,
		Revenue:   revenue,
	}, nil
}
