package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/events"
	"github.com/spec-kit/class-marketplace/internal/repository"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

// CheckoutService performs the two-part reconciliation after an
// external charge has succeeded: record the payment, then retire the
// purchased cart items. The two steps are not wrapped in a
// transaction; once the payment insert succeeds the payment is
// committed no matter what happens to the cart cleanup.
type CheckoutService struct {
	payments   repository.PaymentRepository
	carts      repository.CartRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CheckoutDependencies bundles collaborators for the checkout service.
type CheckoutDependencies struct {
	PaymentRepo repository.PaymentRepository
	CartRepo    repository.CartRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// ReconcileResult reports the outcome of a reconciliation. Partial is
// set when fewer items were removed than were targeted; the payment is
// still committed in that case.
type ReconcileResult struct {
	PaymentID    string
	RemovedCount int64
	Partial      bool
}

// NewCheckoutService constructs the service.
func NewCheckoutService(deps CheckoutDependencies) *CheckoutService {
	return &CheckoutService{
		payments:   deps.PaymentRepo,
		carts:      deps.CartRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Reconcile records the payment and deletes the paid-for cart items.
// Callers must have verified the principal and obtained a successful
// charge for amount before calling. A cart item already removed by a
// concurrent request is not an error; deletion is idempotent and the
// result count reflects actual removals.
func (s *CheckoutService) Reconcile(ctx context.Context, payerEmail string, amount float64, cartItemIDs []string) (*ReconcileResult, error) {
	if payerEmail == "" {
		return nil, apperrors.NewValidationError("payer email required", nil)
	}
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive", nil)
	}
	ids := dedupe(cartItemIDs)
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("cart item ids required", nil)
	}

	pay := &domain.Payment{
		PayerEmail:  payerEmail,
		Amount:      amount,
		CartItemIDs: ids,
	}
	if err := s.payments.Create(ctx, pay); err != nil {
		// The external charge already happened; losing this record is
		// the worst failure in the system, so log everything needed
		// for manual reconciliation.
		s.logger.Error("payment record insert failed after successful charge",
			zap.String("payer_email", payerEmail),
			zap.Float64("amount", amount),
			zap.Strings("cart_item_ids", ids),
			zap.Error(err),
		)
		return nil, apperrors.NewPersistenceError("insert payment", err)
	}

	result := &ReconcileResult{PaymentID: pay.ID}

	removed, err := s.carts.DeleteByIDs(ctx, ids)
	if err != nil {
		// Payment is committed; never roll it back. Surface the
		// incomplete cleanup as a warning outcome instead.
		s.logger.Warn("cart cleanup failed after committed payment",
			zap.String("payment_id", pay.ID),
			zap.String("payer_email", payerEmail),
			zap.Strings("cart_item_ids", ids),
			zap.Error(err),
		)
		result.Partial = true
	} else {
		result.RemovedCount = removed
		if removed < int64(len(ids)) {
			s.logger.Warn("partial reconciliation",
				zap.String("payment_id", pay.ID),
				zap.Int64("removed", removed),
				zap.Int("targeted", len(ids)),
			)
			result.Partial = true
		}
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCheckoutCompleted,
			Actor:     payerEmail,
			Timestamp: time.Now(),
			Payload: events.CheckoutCompletedPayload{
				PaymentID:    pay.ID,
				PayerEmail:   payerEmail,
				Amount:       amount,
				CartItemIDs:  ids,
				RemovedCount: result.RemovedCount,
				Partial:      result.Partial,
			},
		})
	}

	return result, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
