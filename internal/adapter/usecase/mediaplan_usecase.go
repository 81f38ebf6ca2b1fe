package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"radio-mediaplan/internal/core/calculator"
	"radio-mediaplan/internal/core/domain"
	"radio-mediaplan/internal/core/port"
	"radio-mediaplan/internal/metrics"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MediaPlanUseCase orchestrates the calculator, the advisor and the notifier
// to implement port.MediaPlanUseCase.
type MediaPlanUseCase struct {
	calc     *calculator.Calculator
	advisor  port.Advisor
	notifier port.Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

func NewMediaPlanUseCase(
	calc *calculator.Calculator,
	advisor port.Advisor,
	notifier port.Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) *MediaPlanUseCase {
	return &MediaPlanUseCase{
		calc:     calc,
		advisor:  advisor,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// LoadCalculator reads the catalog from repo and binds it to policy.
func LoadCalculator(ctx context.Context, repo port.CatalogRepository, policy calculator.Policy) (*calculator.Calculator, error) {
	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return calculator.New(catalog, policy)
}

func (u *MediaPlanUseCase) Catalog(_ context.Context) domain.Catalog {
	return u.calc.Catalog()
}

func (u *MediaPlanUseCase) Calculate(_ context.Context, in domain.PlanInput) (*domain.PlanResult, error) {
	res, err := u.calc.Compute(in)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		u.metrics.Calculation(metrics.ResultInvalid).Inc()
		return nil, err
	case err != nil:
		u.metrics.Calculation(metrics.ResultError).Inc()
		return nil, err
	}
	u.metrics.Calculation(metrics.ResultOK).Inc()
	return &res, nil
}

// Plan asks the advisor for a station mix and prices it. Quota errors are
// returned as is; any other advisor failure yields the fallback plan.
func (u *MediaPlanUseCase) Plan(ctx context.Context, query string) (*domain.MediaPlan, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewInputError("query", "must not be blank")
	}

	draft, reported, err := u.draft(ctx, query)
	if err != nil {
		u.metrics.Plan(metrics.ResultError).Inc()
		return nil, err
	}

	plan, err := u.Compose(ctx, draft)
	if err != nil {
		u.metrics.Plan(metrics.ResultError).Inc()
		return nil, err
	}
	if reported != nil && !reported.Equal(plan.Calculation) {
		u.logger.Debug("advisor figures differ from calculator",
			slog.String("plan_id", plan.ID),
			slog.Int64("reported_cost", reported.EstimatedCost),
			slog.Int64("calculated_cost", plan.Calculation.EstimatedCost),
			slog.Int64("reported_reach", reported.EstimatedReach),
			slog.Int64("calculated_reach", plan.Calculation.EstimatedReach))
	}
	u.metrics.Plan(string(plan.Source)).Inc()
	return plan, nil
}

// Compose prices a draft and stamps it with an identifier. A draft without a
// source is treated as manual.
func (u *MediaPlanUseCase) Compose(ctx context.Context, draft domain.PlanDraft) (*domain.MediaPlan, error) {
	res, err := u.Calculate(ctx, draft.Input)
	if err != nil {
		return nil, err
	}
	if draft.Source == "" {
		draft.Source = domain.SourceManual
	}
	return &domain.MediaPlan{
		ID:          uuid.NewString(),
		CreatedAt:   u.now().UTC(),
		PlanDraft:   draft,
		Result:      *res,
		Calculation: res.Summary(),
	}, nil
}

func (u *MediaPlanUseCase) Send(ctx context.Context, contact domain.Contact, draft domain.PlanDraft) (*domain.DeliveryResult, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)
	if contact.Name == "" {
		return nil, domain.NewInputError("contact.name", "must not be blank")
	}
	if err := validate.Var(contact.Email, "required,email"); err != nil {
		return nil, domain.NewInputError("contact.email", "%q is not an email address", contact.Email)
	}

	plan, err := u.Compose(ctx, draft)
	if err != nil {
		return nil, err
	}
	res, err := u.notifier.Send(ctx, domain.Delivery{Contact: contact, Plan: *plan})
	if err != nil {
		return nil, fmt.Errorf("send media plan: %w", err)
	}
	u.logger.Info("media plan sent",
		slog.String("plan_id", plan.ID),
		slog.Bool("client_email_sent", res.ClientEmailSent),
		slog.Bool("admin_email_sent", res.AdminEmailSent))
	return res, nil
}

// draft turns advisor output into a plan draft, substituting the fallback
// when the advisor fails or recommends nothing the catalog knows.
func (u *MediaPlanUseCase) draft(ctx context.Context, query string) (domain.PlanDraft, *domain.Calculation, error) {
	catalog := u.calc.Catalog()

	advice, err := u.advisor.Advise(ctx, query)
	switch {
	case errors.Is(err, domain.ErrAdvisorRateLimited), errors.Is(err, domain.ErrAdvisorPaymentRequired):
		u.logger.Warn("advisor quota exhausted", slog.Any("error", err))
		return domain.PlanDraft{}, nil, err
	case err != nil:
		u.logger.Warn("advisor failed, using fallback plan", slog.Any("error", err))
		return fallbackDraft(query, catalog), nil, nil
	}

	draft := sanitize(query, advice, catalog, u.calc.Policy())
	if len(draft.Input.StationIDs) == 0 {
		u.logger.Warn("advisor recommended no known stations, using fallback plan")
		return fallbackDraft(query, catalog), nil, nil
	}
	return draft, advice.Reported, nil
}

// sanitize resolves recommended stations against the catalog by ID and then
// by name, drops unknown stations and out-of-range slots, and defaults
// non-positive flight parameters and caps them at the policy limits. With no
// usable slot the fallback prime-time slots are used. At most maxScripts
// scripts are kept.
func sanitize(query string, advice *domain.Advice, catalog domain.Catalog, policy calculator.Policy) domain.PlanDraft {
	seen := make(map[string]bool, len(advice.Stations))
	var stations []domain.RecommendedStation
	for _, rec := range advice.Stations {
		s, ok := catalog.Station(rec.StationID)
		if !ok {
			s, ok = catalog.StationByName(rec.Name)
		}
		if !ok || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		stations = append(stations, recommend(s, rec.Reason))
	}

	var slots []int
	for _, i := range advice.SlotIndices {
		if i >= 0 && i < len(catalog.Slots) {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		slots = fallbackDraft(query, catalog).Input.SlotIndices
	}

	days := advice.Days
	if days <= 0 {
		days = defaultDays
	}
	duration := advice.DurationSeconds
	if duration <= 0 {
		duration = defaultDuration
	}
	days = min(days, policy.MaxDays)
	duration = min(duration, policy.MaxDurationSeconds)

	scripts := advice.Scripts
	if len(scripts) > maxScripts {
		scripts = scripts[:maxScripts]
	}

	return domain.PlanDraft{
		Query:    query,
		Source:   domain.SourceAI,
		Strategy: advice.Strategy,
		Stations: stations,
		Creative: advice.Creative,
		Scripts:  scripts,
		Input: domain.PlanInput{
			StationIDs:      stationIDs(stations),
			Days:            days,
			DurationSeconds: duration,
			SlotIndices:     slots,
		},
	}
}
