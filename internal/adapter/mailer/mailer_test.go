package mailer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radio-mediaplan/internal/adapter/static"
	"radio-mediaplan/internal/config/configs"
	"radio-mediaplan/internal/core/calculator"
	"radio-mediaplan/internal/core/domain"
	"radio-mediaplan/internal/metrics"
	"radio-mediaplan/internal/resilience"
)

type outbox struct {
	mu     sync.Mutex
	emails []emailRequest
	auth   []string
}

func (o *outbox) handler(status func(emailRequest) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var email emailRequest
		_ = json.NewDecoder(r.Body).Decode(&email)
		o.mu.Lock()
		o.emails = append(o.emails, email)
		o.auth = append(o.auth, r.Header.Get("Authorization"))
		o.mu.Unlock()
		w.WriteHeader(status(email))
	}
}

func (o *outbox) to(addr string) (emailRequest, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, e := range o.emails {
		if len(e.To) == 1 && e.To[0] == addr {
			return e, true
		}
	}
	return emailRequest{}, false
}

func delivery(t *testing.T) domain.Delivery {
	t.Helper()
	calc, err := calculator.New(static.DefaultCatalog(), calculator.DefaultPolicy())
	require.NoError(t, err)
	in := domain.PlanInput{StationIDs: []string{"retro"}, Days: 1, DurationSeconds: 10, SlotIndices: []int{0}}
	res, err := calc.Compute(in)
	require.NoError(t, err)

	return domain.Delivery{
		Contact: domain.Contact{Name: "Иван <script>", Email: "ivan@example.ru", Phone: "+7 900 000-00-00"},
		Plan: domain.MediaPlan{
			ID:        "plan-1",
			CreatedAt: time.Now(),
			PlanDraft: domain.PlanDraft{
				Query:    "Шиномонтаж",
				Source:   domain.SourceAI,
				Strategy: domain.Strategy{Title: "Автомобилисты", Description: "Утренние слоты."},
				Stations: []domain.RecommendedStation{{StationID: "retro", Name: "Ретро FM", Reason: "Водители 35+"}},
				Creative: domain.Creative{Tips: []string{"Назовите адрес"}},
				Scripts:  []domain.Script{{Title: "Сезон", DurationSeconds: 10, Text: "Переобуйтесь заранее!"}},
				Input:    in,
			},
			Result:      res,
			Calculation: res.Summary(),
		},
	}
}

func newMailer(cfg configs.Mail, m *metrics.Metrics) *Mailer {
	httpClient := resilience.NewClient(resilience.ClientConfig{
		Name:            "mailer",
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
	})
	return New(cfg, httpClient, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSendBothEmails(t *testing.T) {
	box := &outbox{}
	server := httptest.NewServer(box.handler(func(emailRequest) int { return http.StatusOK }))
	defer server.Close()

	m := metrics.New()
	cfg := configs.Mail{BaseURL: server.URL, APIKey: "re_key", From: "РТО <noreply@rto.example>", AdminEmail: "sales@rto.example"}

	res, err := newMailer(cfg, m).Send(context.Background(), delivery(t))
	require.NoError(t, err)
	assert.True(t, res.ClientEmailSent)
	assert.True(t, res.AdminEmailSent)

	client, ok := box.to("ivan@example.ru")
	require.True(t, ok)
	assert.Equal(t, clientSubject, client.Subject)
	assert.Equal(t, "РТО <noreply@rto.example>", client.From)
	assert.Contains(t, client.HTML, "Автомобилисты")
	assert.Contains(t, client.HTML, "Водители 35+")
	assert.Contains(t, client.HTML, "Вариант 1: Сезон (10 сек)")
	assert.Contains(t, client.HTML, "015 ₽")

	admin, ok := box.to("sales@rto.example")
	require.True(t, ok)
	assert.Equal(t, "🔔 Новая заявка: Иван <script>", admin.Subject)
	assert.Contains(t, admin.HTML, "Иван &lt;script&gt;")
	assert.NotContains(t, admin.HTML, "<script>")
	assert.Contains(t, admin.HTML, "+7 900 000-00-00")
	assert.Contains(t, admin.HTML, "Шиномонтаж")

	assert.Equal(t, []string{"Bearer re_key", "Bearer re_key"}, box.auth)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notification(metrics.RecipientClient, metrics.StatusSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notification(metrics.RecipientAdmin, metrics.StatusSent)))
}

func TestSendWithoutKeySkips(t *testing.T) {
	m := metrics.New()
	res, err := newMailer(configs.Mail{BaseURL: "http://127.0.0.1:1", AdminEmail: "sales@rto.example"}, m).
		Send(context.Background(), delivery(t))
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryResult{}, *res)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notification(metrics.RecipientClient, metrics.StatusSkipped)))
}

func TestSendWithoutAdminAddress(t *testing.T) {
	box := &outbox{}
	server := httptest.NewServer(box.handler(func(emailRequest) int { return http.StatusOK }))
	defer server.Close()

	m := metrics.New()
	res, err := newMailer(configs.Mail{BaseURL: server.URL, APIKey: "re_key"}, m).Send(context.Background(), delivery(t))
	require.NoError(t, err)
	assert.True(t, res.ClientEmailSent)
	assert.False(t, res.AdminEmailSent)
	assert.Len(t, box.emails, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notification(metrics.RecipientAdmin, metrics.StatusSkipped)))
}

func TestSendReportsPerRecipientFailure(t *testing.T) {
	box := &outbox{}
	// клиентский адрес отклоняется провайдером, админский принимается
	server := httptest.NewServer(box.handler(func(e emailRequest) int {
		if e.To[0] == "ivan@example.ru" {
			return http.StatusUnprocessableEntity
		}
		return http.StatusOK
	}))
	defer server.Close()

	m := metrics.New()
	cfg := configs.Mail{BaseURL: server.URL, APIKey: "re_key", AdminEmail: "sales@rto.example"}
	res, err := newMailer(cfg, m).Send(context.Background(), delivery(t))
	require.NoError(t, err)
	assert.False(t, res.ClientEmailSent)
	assert.True(t, res.AdminEmailSent)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notification(metrics.RecipientClient, metrics.StatusFailed)))
}
