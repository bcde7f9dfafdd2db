package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crop-exchange/internal/config"
	"crop-exchange/internal/services"
)

// The router tests exercise routing, authentication, and validation
// behavior that resolves before any database access, so a nil *sql.DB is
// safe here.
func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{
		Port:          "8080",
		JWTSecret:     "router-test-secret",
		ClassifierURL: "http://127.0.0.1:1",
	}
	return SetupRouter(nil, cfg, zerolog.Nop())
}

func bearerToken(t *testing.T, userID int, role string) string {
	t.Helper()
	auth := services.NewAuthService("router-test-secret", zerolog.Nop())
	token, err := auth.GenerateToken(userID, "user@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := testRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/api/products"},
		{"GET", "/api/products/farmer/me"},
		{"POST", "/api/resources"},
		{"GET", "/api/resources/all"},
		{"GET", "/api/resources/user/me"},
		{"POST", "/api/resources/request"},
		{"GET", "/api/resources/requests/received"},
		{"GET", "/api/resources/requests/sent"},
		{"PUT", "/api/resources/requests/1"},
		{"POST", "/api/diagnosis/upload"},
		{"POST", "/api/diagnosis/report"},
		{"GET", "/api/auth/me"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			req := httptest.NewRequest(p.method, p.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestResourceReadsAreFarmerOnly(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("GET", "/api/resources/all", nil)
	req.Header.Set("Authorization", bearerToken(t, 5, "retailer"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest("GET", "/api/resources/9", nil)
	req.Header.Set("Authorization", bearerToken(t, 5, "retailer"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMalformedIDsNormalizeToNotFound(t *testing.T) {
	r := testRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/products/not-a-number"},
		{"PUT", "/api/products/not-a-number"},
		{"DELETE", "/api/products/0"},
		{"PUT", "/api/resources/requests/abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			req.Header.Set("Authorization", bearerToken(t, 1, "farmer"))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "not_found", body["error"])
		})
	}
}

func TestMutationsEnforceJSONContentType(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("POST", "/api/resources/request", strings.NewReader("resourceId=1"))
	req.Header.Set("Authorization", bearerToken(t, 1, "farmer"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedJSONBodyIsBadRequest(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("POST", "/api/resources/request", strings.NewReader("{not json"))
	req.Header.Set("Authorization", bearerToken(t, 1, "farmer"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiagnosisReportValidation(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("POST", "/api/diagnosis/report", strings.NewReader(`{"diagnosisId":"","comment":"wrong"}`))
	req.Header.Set("Authorization", bearerToken(t, 1, "farmer"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiagnosisUploadRequiresImage(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("POST", "/api/diagnosis/upload", strings.NewReader(""))
	req.Header.Set("Authorization", bearerToken(t, 1, "farmer"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=empty")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
