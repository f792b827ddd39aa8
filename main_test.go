package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wandervoice/assistant"
	"wandervoice/itinerary"
	"wandervoice/ratelim"
	"wandervoice/routes"
	"wandervoice/search"
	"wandervoice/tripplan"

	"github.com/stretchr/testify/assert"
)

func testRouter() http.Handler {
	return setupRouter(ratelim.NewRateLimiter(), routes.Deps{
		Search:    search.NewService(),
		Assistant: assistant.New(nil, nil, nil),
		Plan:      itinerary.NewAPI(),
		TripPlan:  tripplan.NewHandler(nil),
	})
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "200", rec.Body.String())
}

func TestWrongMethodYieldsJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/generate-trip-plan", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
