package port

import (
	"context"

	"radio-mediaplan/internal/core/domain"
)

// MediaPlanUseCase defines the business operations exposed by the media
// planner. It is the primary port into the application domain.
type MediaPlanUseCase interface {
	// Catalog returns the reference data plans are priced against.
	Catalog(ctx context.Context) domain.Catalog

	// Calculate prices a campaign configuration. Invalid input yields an
	// error matching domain.ErrInvalidInput.
	Calculate(ctx context.Context, in domain.PlanInput) (*domain.PlanResult, error)

	// Plan turns a free-text business description into a priced media plan.
	// The advisor only chooses stations, slots and flight parameters; the
	// price always comes from the calculator. When the advisor fails for any
	// reason other than quota, a static fallback plan is returned instead.
	Plan(ctx context.Context, query string) (*domain.MediaPlan, error)

	// Compose prices a draft assembled by the caller, e.g. for export.
	Compose(ctx context.Context, draft domain.PlanDraft) (*domain.MediaPlan, error)

	// Send prices the draft and emails it to the prospect and the sales
	// desk.
	Send(ctx context.Context, contact domain.Contact, draft domain.PlanDraft) (*domain.DeliveryResult, error)
}
