package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.Calculation(ResultOK).Inc()
	m.Calculation(ResultOK).Inc()
	m.Calculation(ResultInvalid).Inc()
	m.Plan("fallback").Inc()
	m.Notification(RecipientAdmin, StatusSkipped).Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Calculation(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculation(ResultInvalid)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Plan("ai")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Plan("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notification(RecipientAdmin, StatusSkipped)))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.Plan("ai").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `mediaplan_plans_total{source="ai"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
