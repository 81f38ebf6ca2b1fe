package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"radio-mediaplan/internal/adapter/static"
	"radio-mediaplan/internal/core/calculator"
	"radio-mediaplan/internal/core/domain"
	"radio-mediaplan/internal/core/port/mocks"
	"radio-mediaplan/internal/metrics"
)

type fixture struct {
	svc      *MediaPlanUseCase
	advisor  *mocks.MockAdvisor
	notifier *mocks.MockNotifier
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	calc, err := calculator.New(static.DefaultCatalog(), calculator.DefaultPolicy())
	require.NoError(t, err)

	f := fixture{
		advisor:  mocks.NewMockAdvisor(t),
		notifier: mocks.NewMockNotifier(t),
		metrics:  metrics.New(),
	}
	f.svc = NewMediaPlanUseCase(calc, f.advisor, f.notifier, f.metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.svc.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.FixedZone("YEKT", 5*3600)) }
	return f
}

// TestPlanUsesCalculatorNotModelFigures ensures the price comes from the
// calculator even when the model reports its own numbers.
func TestPlanUsesCalculatorNotModelFigures(t *testing.T) {
	f := newFixture(t)

	advice := &domain.Advice{
		Strategy: domain.Strategy{Title: "Молодёжь и водители"},
		Stations: []domain.RecommendedStation{
			{StationID: "love", Reason: "18-35"},
			{Name: "АВТОРАДИО", Reason: "водители"},
			{Name: "Европа Плюс", Reason: "нет в каталоге"},
			{StationID: "love", Reason: "повтор"},
		},
		SlotIndices:     []int{0, 1, 99, -1},
		Days:            0,
		DurationSeconds: 15,
		Reported:        &domain.Calculation{EstimatedCost: 1, CostPerContact: domain.Fixed2{}},
	}
	f.advisor.EXPECT().Advise(mock.Anything, "кофейня").Return(advice, nil)

	plan, err := f.svc.Plan(context.Background(), "  кофейня ")
	require.NoError(t, err)

	assert.Equal(t, domain.SourceAI, plan.Source)
	assert.Equal(t, "кофейня", plan.Query)
	require.Len(t, plan.Stations, 2)
	assert.Equal(t, "love", plan.Stations[0].StationID)
	assert.Equal(t, "Love Radio", plan.Stations[0].Name)
	assert.Equal(t, "avto", plan.Stations[1].StationID)
	assert.Equal(t, []string{"love", "avto"}, plan.Input.StationIDs)
	assert.Equal(t, []int{0, 1}, plan.Input.SlotIndices)
	assert.Equal(t, defaultDays, plan.Input.Days)

	// 2 станции: 1.5 ₽/с × 15 с = 22.5 за выход, 4 выхода в день, 25 дней
	assert.Equal(t, int64(100), plan.Result.TotalSpots)
	assert.Equal(t, int64(2250+2000), plan.Calculation.EstimatedCost)
	assert.NotEqual(t, advice.Reported.EstimatedCost, plan.Calculation.EstimatedCost)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, time.UTC, plan.CreatedAt.Location())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Plan("ai")))
}

// TestPlanClampsAdvice: модель может вернуть что угодно, план всё равно
// должен остаться в пределах политики.
func TestPlanClampsAdvice(t *testing.T) {
	f := newFixture(t)

	advice := &domain.Advice{
		Stations:        []domain.RecommendedStation{{StationID: "retro"}},
		SlotIndices:     []int{0},
		Days:            1 << 60,
		DurationSeconds: 1 << 40,
		Scripts: []domain.Script{
			{Title: "1"}, {Title: "2"}, {Title: "3"}, {Title: "4"}, {Title: "5"},
		},
	}
	f.advisor.EXPECT().Advise(mock.Anything, "пекарня").Return(advice, nil)

	plan, err := f.svc.Plan(context.Background(), "пекарня")
	require.NoError(t, err)

	policy := calculator.DefaultPolicy()
	assert.Equal(t, domain.SourceAI, plan.Source)
	assert.Equal(t, policy.MaxDays, plan.Input.Days)
	assert.Equal(t, policy.MaxDurationSeconds, plan.Input.DurationSeconds)
	assert.Equal(t, int64(policy.MaxDays), plan.Result.TotalSpots)
	assert.Positive(t, plan.Result.FinalPrice)
	require.Len(t, plan.Scripts, 3)
	assert.Equal(t, "3", plan.Scripts[2].Title)
}

func TestPlanFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		advice *domain.Advice
		err    error
	}{
		{"transport error", nil, errors.New("dial tcp: connection refused")},
		{"not configured", nil, domain.ErrAdvisorNotConfigured},
		{"no known stations", &domain.Advice{Stations: []domain.RecommendedStation{{Name: "Европа Плюс"}}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.advisor.EXPECT().Advise(mock.Anything, "автосервис").Return(tt.advice, tt.err)

			plan, err := f.svc.Plan(context.Background(), "автосервис")
			require.NoError(t, err)

			assert.Equal(t, domain.SourceFallback, plan.Source)
			assert.Equal(t, []string{"retro", "avto", "dacha", "shanson"}, plan.Input.StationIDs)
			assert.Equal(t, 25, plan.Input.Days)
			assert.Equal(t, 20, plan.Input.DurationSeconds)
			assert.Len(t, plan.Input.SlotIndices, 8)

			want := domain.Calculation{
				StationsCount:  4,
				SpotsPerDay:    32,
				CampaignDays:   25,
				TotalSpots:     800,
				EstimatedReach: 124975,
				EstimatedCost:  22800,
				CostPerContact: domain.NewFixed2(decimal.RequireFromString("0.17")),
			}
			assert.True(t, want.Equal(plan.Calculation), "got %+v", plan.Calculation)
			assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Plan("fallback")))
		})
	}
}

func TestPlanSurfacesQuotaErrors(t *testing.T) {
	for _, quotaErr := range []error{domain.ErrAdvisorRateLimited, domain.ErrAdvisorPaymentRequired} {
		f := newFixture(t)
		f.advisor.EXPECT().Advise(mock.Anything, mock.Anything).Return(nil, quotaErr)

		plan, err := f.svc.Plan(context.Background(), "цветы")
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, quotaErr)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Plan(metrics.ResultError)))
	}
}

func TestPlanRejectsBlankQuery(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Plan(context.Background(), " \n\t")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.advisor.AssertNotCalled(t, "Advise", mock.Anything, mock.Anything)
}

func TestComposeDefaultsToManual(t *testing.T) {
	f := newFixture(t)

	plan, err := f.svc.Compose(context.Background(), domain.PlanDraft{
		Input: domain.PlanInput{StationIDs: []string{"retro"}, Days: 1, DurationSeconds: 10, SlotIndices: []int{0}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceManual, plan.Source)
	assert.Equal(t, int64(2015), plan.Result.FinalPrice)
	assert.True(t, plan.Result.Summary().Equal(plan.Calculation))

	_, err = f.svc.Compose(context.Background(), domain.PlanDraft{Input: domain.PlanInput{Days: 0, DurationSeconds: 10}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Calculation(metrics.ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Calculation(metrics.ResultOK)))
}

func TestSend(t *testing.T) {
	f := newFixture(t)
	draft := domain.PlanDraft{
		Query: "стоматология",
		Input: domain.PlanInput{StationIDs: []string{"retro", "dacha"}, Days: 10, DurationSeconds: 20, SlotIndices: []int{0, 1}},
	}

	f.notifier.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(d domain.Delivery) bool {
			return d.Contact.Email == "anna@example.ru" &&
				d.Contact.Name == "Анна" &&
				d.Plan.Calculation.StationsCount == 2 &&
				d.Plan.Query == "стоматология"
		})).
		Return(&domain.DeliveryResult{ClientEmailSent: true, AdminEmailSent: true}, nil)

	res, err := f.svc.Send(context.Background(), domain.Contact{Name: " Анна ", Email: "anna@example.ru "}, draft)
	require.NoError(t, err)
	assert.True(t, res.ClientEmailSent)
	assert.True(t, res.AdminEmailSent)
}

func TestSendValidatesContact(t *testing.T) {
	f := newFixture(t)
	draft := domain.PlanDraft{Input: domain.PlanInput{StationIDs: []string{"retro"}, Days: 1, DurationSeconds: 10}}

	var inputErr *domain.InputError

	_, err := f.svc.Send(context.Background(), domain.Contact{Email: "anna@example.ru"}, draft)
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "contact.name", inputErr.Field)

	_, err = f.svc.Send(context.Background(), domain.Contact{Name: "Анна", Email: "not-an-email"}, draft)
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "contact.email", inputErr.Field)

	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestLoadCalculator(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().LoadCatalog(mock.Anything).Return(static.DefaultCatalog(), nil).Once()

	calc, err := LoadCalculator(context.Background(), repo, calculator.DefaultPolicy())
	require.NoError(t, err)
	assert.Len(t, calc.Catalog().Stations, 6)

	broken := mocks.NewMockCatalogRepository(t)
	broken.EXPECT().LoadCatalog(mock.Anything).Return(domain.Catalog{}, nil)
	_, err = LoadCalculator(context.Background(), broken, calculator.DefaultPolicy())
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	failing := mocks.NewMockCatalogRepository(t)
	failing.EXPECT().LoadCatalog(mock.Anything).Return(domain.Catalog{}, errors.New("connection reset"))
	_, err = LoadCalculator(context.Background(), failing, calculator.DefaultPolicy())
	assert.ErrorContains(t, err, "load catalog")
}
