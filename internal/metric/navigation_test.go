package metric

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/sidenav/internal/nav"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func TestNavigation(t *testing.T) {
	reg := prometheus.NewRegistry()

	metrics := NewNavigation(reg)

	metrics.Observe(nav.Transition{Label: "API", Expanded: true, Href: "/api/ref", Navigated: true})
	metrics.Observe(nav.Transition{Label: "API", Expanded: false})

	server := httptest.NewServer(Handler(reg))
	defer server.Close()

	res, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := []string{
		`sidenav_section_toggles_total{section="API",state="expanded"} 1`,
		`sidenav_section_toggles_total{section="API",state="collapsed"} 1`,
		`sidenav_section_navigations_total{section="API"} 1`,
	}

	for _, e := range expected {
		if !strings.Contains(string(body), e) {
			t.Errorf("body: expected to contain '%s', got '%s'", e, body)
		}
	}
}
