package port

import (
	"context"

	"radio-mediaplan/internal/core/domain"
)

// Advisor asks an external language model to recommend a station mix,
// schedule and creative for a business description. Quota failures are
// reported as domain.ErrAdvisorRateLimited or domain.ErrAdvisorPaymentRequired.
type Advisor interface {
	Advise(ctx context.Context, query string) (*domain.Advice, error)
}
