package port

import (
	"context"

	"radio-mediaplan/internal/core/domain"
)

// Notifier delivers a priced media plan by email to the prospect and to the
// sales desk. A message the provider refuses is reported through the result
// flags, not as an error.
type Notifier interface {
	Send(ctx context.Context, delivery domain.Delivery) (*domain.DeliveryResult, error)
}
