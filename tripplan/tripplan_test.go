package tripplan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"wandervoice/agi"
	"wandervoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	calls    []agi.Request
	response string
	err      error
}

func (f *fakeCompleter) Complete(ctx context.Context, req agi.Request) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func staticPlaces(places []models.Place, err error) func(context.Context, string) ([]models.Place, error) {
	return func(ctx context.Context, province string) ([]models.Place, error) {
		return places, err
	}
}

func doPlanRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-trip-plan", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.GeneratePlan(rec, req, nil)
	return rec
}

const validBody = `{"province":"Phuket","startDate":"2026-01-10","endDate":"2026-01-12","style":"ชิลล์","budget":1500}`

func TestGeneratePlanMissingInput(t *testing.T) {
	h := &Handler{Completer: &fakeCompleter{}, FetchPlaces: staticPlaces(nil, nil)}

	for _, body := range []string{
		`{}`,
		`{"province":"Phuket"}`,
		`{"province":"Phuket","startDate":"2026-01-10","endDate":"2026-01-12"}`,
		`{"startDate":"2026-01-10","endDate":"2026-01-12","style":"ชิลล์","budget":1500}`,
	} {
		rec := doPlanRequest(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.Contains(t, rec.Body.String(), "Missing input")
	}
}

func TestGeneratePlanAcceptsTravelStyleKey(t *testing.T) {
	fc := &fakeCompleter{response: "วันที่ 1: ..."}
	h := &Handler{Completer: fc, FetchPlaces: staticPlaces(nil, nil)}

	body := `{"province":"Phuket","startDate":"2026-01-10","endDate":"2026-01-12","travelStyle":"ผจญภัย","budget":"2000"}`
	rec := doPlanRequest(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fc.calls, 1)
	assert.Contains(t, fc.calls[0].Messages[0].Content, "ผจญภัย")
}

func TestGeneratePlanPlacesFetchFailure(t *testing.T) {
	h := &Handler{
		Completer:   &fakeCompleter{response: "unused"},
		FetchPlaces: staticPlaces(nil, errors.New("mongo down")),
	}

	rec := doPlanRequest(t, h, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch places")
	assert.NotContains(t, rec.Body.String(), "mongo down")
}

func TestGeneratePlanCompletionFailure(t *testing.T) {
	h := &Handler{
		Completer:   &fakeCompleter{err: errors.New("rate limited")},
		FetchPlaces: staticPlaces(nil, nil),
	}

	rec := doPlanRequest(t, h, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI generation failed")
}

func TestGeneratePlanSuccess(t *testing.T) {
	places := []models.Place{
		{PlaceID: "p1", Name: "Big Buddha", Province: "Phuket"},
		{PlaceID: "p2", Name: "Old Town", Province: "Phuket"},
	}
	fc := &fakeCompleter{response: "วันที่ 1: ไป Big Buddha"}
	h := &Handler{Completer: fc, FetchPlaces: staticPlaces(places, nil)}

	rec := doPlanRequest(t, h, validBody)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "วันที่ 1: ไป Big Buddha", resp["plan"])

	require.Len(t, fc.calls, 1)
	req := fc.calls[0]
	assert.Equal(t, agi.PlannerModel, req.Model)
	assert.Equal(t, planTemperature, req.Temperature)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, agi.RoleUser, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Phuket")
	assert.Contains(t, req.Messages[0].Content, "Big Buddha, Old Town")
}

func TestGeneratePlanNoPlacesFallbackLine(t *testing.T) {
	fc := &fakeCompleter{response: "plan"}
	h := &Handler{Completer: fc, FetchPlaces: staticPlaces(nil, nil)}

	rec := doPlanRequest(t, h, validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fc.calls, 1)
	assert.Contains(t, fc.calls[0].Messages[0].Content, "ไม่มีข้อมูลสถานที่")
}

func TestGeneratePlanWithoutCompleter(t *testing.T) {
	h := &Handler{FetchPlaces: staticPlaces(nil, nil)}

	rec := doPlanRequest(t, h, validBody)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
