package assessments_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/bootstrap"
	"offr-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		Env:             "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func assessBody() []byte {
	return []byte(`{
		"course_id": "ucl-cs",
		"home_or_intl": "home",
		"curriculum": "IB",
		"ib": {
			"core_points": 2,
			"hl": [
				{"subject": "Mathematics", "grade": 6},
				{"subject": "Physics", "grade": 6},
				{"subject": "Chemistry", "grade": 6}
			],
			"sl": [
				{"subject": "English", "grade": 6},
				{"subject": "History", "grade": 6},
				{"subject": "Spanish", "grade": 6}
			]
		}
	}`)
}

func TestAssessEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess", bytes.NewReader(assessBody()))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Verdict       string `json:"verdict"`
		Band          string `json:"band"`
		ChancePercent int    `json:"chance_percent"`
		Checks        struct {
			Passed []string `json:"passed"`
			Failed []string `json:"failed"`
		} `json:"checks"`
		Competitiveness struct {
			ThresholdUsed int `json:"threshold_used"`
			Margin        int `json:"margin"`
			Score         int `json:"score"`
		} `json:"competitiveness"`
		Alternatives []map[string]any `json:"alternatives"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Band != "Reach" || body.ChancePercent != 26 {
		t.Fatalf("expected Reach/26, got %s/%d", body.Band, body.ChancePercent)
	}
	if body.Competitiveness.Score != 38 || body.Competitiveness.Margin != -2 {
		t.Fatalf("unexpected competitiveness: %+v", body.Competitiveness)
	}
	if body.Verdict == "" || len(body.Checks.Passed) == 0 {
		t.Fatalf("expected verdict and checks, got %+v", body)
	}
}

func TestAssessEndpointUnknownCourse(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess",
		bytes.NewReader([]byte(`{"course_id": "no-such-course", "home_or_intl": "home", "curriculum": "IB", "ib": {"core_points": 2, "hl": [], "sl": []}}`)))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAssessEndpointMissingCourseID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess",
		bytes.NewReader([]byte(`{"home_or_intl": "home", "curriculum": "IB"}`)))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAssessEndpointRequiresIdentity(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assess", bytes.NewReader(assessBody()))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", resp.Code)
	}
}
