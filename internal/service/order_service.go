package service

import (
	"context"
	"fmt"

	"shopfront/internal/model"
	"shopfront/internal/repository"
	"shopfront/internal/validate"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	repo      repository.OrderRepository
	tolerance decimal.Decimal
	logger    zerolog.Logger
}

// NewOrderService creates a new order service. tolerance is the
// maximum allowed deviation between the client-supplied total and the
// recomputed sum of line items; it must be a valid decimal string.
func NewOrderService(repo repository.OrderRepository, tolerance string, logger zerolog.Logger) (OrderService, error) {
	tol, err := decimal.NewFromString(tolerance)
	if err != nil {
		return nil, fmt.Errorf("invalid order total tolerance %q: %w", tolerance, err)
	}

	return &orderService{
		repo:      repo,
		tolerance: tol,
		logger:    logger.With().Str("service", "order").Logger(),
	}, nil
}

// Create validates the checkout payload, verifies the submitted total
// against the item snapshot and stores the order. The client-supplied
// total is kept verbatim once it passes verification.
func (s *orderService) Create(ctx context.Context, in *model.OrderInput) (*model.Order, error) {
	if err := validate.Order(in); err != nil {
		s.logger.Warn().Err(err).Msg("order payload rejected")
		return nil, err
	}

	if err := s.verifyTotal(in); err != nil {
		s.logger.Warn().Err(err).Str("total", in.Total).Msg("order total rejected")
		return nil, err
	}

	order, err := s.repo.CreateOrder(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Int("item_count", len(order.Items)).
		Str("total", order.Total).
		Msg("order created")

	return order, nil
}

// List retrieves all captured orders.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.GetAllOrders(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		orders = []model.Order{}
	}

	s.logger.Debug().Int("count", len(orders)).Msg("listed orders")
	return orders, nil
}

// verifyTotal recomputes sum(price x quantity) over the submitted
// items and rejects the order when the client total deviates beyond
// the configured tolerance. The payload has already passed validation,
// so every price and the total parse as decimals.
func (s *orderService) verifyTotal(in *model.OrderInput) error {
	clientTotal, err := decimal.NewFromString(in.Total)
	if err != nil {
		return fmt.Errorf("unparseable total after validation: %w", err)
	}

	serverTotal := decimal.Zero
	for _, item := range in.Items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return fmt.Errorf("unparseable item price after validation: %w", err)
		}
		serverTotal = serverTotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if clientTotal.Sub(serverTotal).Abs().GreaterThan(s.tolerance) {
		verr := &model.ValidationError{}
		verr.Add("total", fmt.Sprintf("does not match order items (expected %s)", serverTotal.StringFixed(2)))
		return verr
	}

	return nil
}
