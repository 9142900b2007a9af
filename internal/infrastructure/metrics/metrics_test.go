package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(accessDecisions.WithLabelValues("owner_match"))
	RecordAccessDecision("owner_match")
	if got := testutil.ToFloat64(accessDecisions.WithLabelValues("owner_match")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}

	beforeUnknown := testutil.ToFloat64(unknownOptions)
	RecordUnknownOptions(0)
	RecordUnknownOptions(2)
	if got := testutil.ToFloat64(unknownOptions); got != beforeUnknown+2 {
		t.Fatalf("expected %v, got %v", beforeUnknown+2, got)
	}
}

func TestHandler(t *testing.T) {
	ObserveHTTP(http.MethodGet, "/v1/ping", http.StatusOK, 3*time.Millisecond)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "backing_tracks_http_requests_total") {
		t.Fatalf("expected http counter in output")
	}
}
