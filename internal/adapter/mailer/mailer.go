// Package mailer delivers media plans by email through the Resend API.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"radio-mediaplan/internal/adapter/export"
	"radio-mediaplan/internal/config/configs"
	"radio-mediaplan/internal/core/domain"
	"radio-mediaplan/internal/metrics"
	"radio-mediaplan/internal/resilience"
)

const (
	clientSubject = "Ваш медиаплан от РТО готов!"
	adminSubject  = "🔔 Новая заявка: %s"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"inc":         func(i int) int { return i + 1 },
	"number":      export.Number,
	"price":       export.Price,
	"reach":       export.Reach,
	"contactCost": export.ContactCost,
}).ParseFS(templateFS, "templates/*.html"))

// Mailer implements port.Notifier.
type Mailer struct {
	cfg     configs.Mail
	http    *resilience.Client
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func New(cfg configs.Mail, httpClient *resilience.Client, m *metrics.Metrics, logger *slog.Logger) *Mailer {
	return &Mailer{cfg: cfg, http: httpClient, metrics: m, logger: logger}
}

type stationView struct {
	Name      string
	Frequency string
	Reason    string
}

type view struct {
	Contact  domain.Contact
	Plan     domain.MediaPlan
	Calc     domain.Calculation
	Stations []stationView
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send emails the plan to the client and a lead notice to the admin
// concurrently. Delivery failures are reported through the result flags, not
// as an error; only rendering errors fail the call. Nothing is sent without
// an API key, and the lead notice is skipped without an admin address.
func (m *Mailer) Send(ctx context.Context, d domain.Delivery) (*domain.DeliveryResult, error) {
	result := &domain.DeliveryResult{}
	if m.cfg.APIKey == "" {
		m.logger.Info("mail API key not configured, skipping emails")
		m.metrics.Notification(metrics.RecipientClient, metrics.StatusSkipped).Inc()
		m.metrics.Notification(metrics.RecipientAdmin, metrics.StatusSkipped).Inc()
		return result, nil
	}

	v := newView(d)
	clientHTML, err := render("client.html", v)
	if err != nil {
		return nil, err
	}
	adminHTML, err := render("admin.html", v)
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.Go(func() error {
		result.ClientEmailSent = m.deliver(ctx, metrics.RecipientClient, emailRequest{
			From:    m.cfg.From,
			To:      []string{d.Contact.Email},
			Subject: clientSubject,
			HTML:    clientHTML,
		})
		return nil
	})
	if m.cfg.AdminEmail != "" {
		g.Go(func() error {
			result.AdminEmailSent = m.deliver(ctx, metrics.RecipientAdmin, emailRequest{
				From:    m.cfg.From,
				To:      []string{m.cfg.AdminEmail},
				Subject: fmt.Sprintf(adminSubject, d.Contact.Name),
				HTML:    adminHTML,
			})
			return nil
		})
	} else {
		m.metrics.Notification(metrics.RecipientAdmin, metrics.StatusSkipped).Inc()
	}
	_ = g.Wait()

	return result, nil
}

func (m *Mailer) deliver(ctx context.Context, recipient string, email emailRequest) bool {
	err := m.post(ctx, email)
	if err != nil {
		m.logger.Warn("failed to send email",
			slog.String("recipient", recipient), slog.Any("error", err))
		m.metrics.Notification(recipient, metrics.StatusFailed).Inc()
		return false
	}
	m.metrics.Notification(recipient, metrics.StatusSent).Inc()
	return true
}

func (m *Mailer) post(ctx context.Context, email emailRequest) error {
	body, err := json.Marshal(email)
	if err != nil {
		return err
	}
	url := strings.TrimRight(m.cfg.BaseURL, "/") + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail API status %d: %s", resp.StatusCode, snippet)
	}
	return nil
}

func newView(d domain.Delivery) view {
	reasons := make(map[string]string, len(d.Plan.Stations))
	for _, s := range d.Plan.Stations {
		reasons[s.StationID] = s.Reason
	}
	stations := make([]stationView, 0, len(d.Plan.Result.StationDetails))
	for _, s := range d.Plan.Result.StationDetails {
		stations = append(stations, stationView{Name: s.Name, Frequency: s.Frequency, Reason: reasons[s.ID]})
	}
	return view{Contact: d.Contact, Plan: d.Plan, Calc: d.Plan.Calculation, Stations: stations}
}

func render(name string, v view) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, v); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}
