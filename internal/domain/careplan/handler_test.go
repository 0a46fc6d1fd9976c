package careplan_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-preventive-care/internal/domain/careplan"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventBody struct {
	AnimalID    string `json:"animal_id"`
	Name        string `json:"name"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Kind        string `json:"kind"`
	ShiftedDays int    `json:"shifted_days"`
}

type scheduleBody struct {
	AnimalID string      `json:"animal_id"`
	Events   []eventBody `json:"events"`
	Warnings []struct {
		Code string `json:"code"`
	} `json:"warnings"`
}

func newTestHandler(t *testing.T, profiles careplan.ProfileSource) http.Handler {
	t.Helper()
	svc := careplan.NewService(mustEngine(t, twoVaccineDogTable()), careplan.ServiceOptions{
		Profiles:     profiles,
		PreviewLimit: 1,
	})
	r := chi.NewRouter()
	careplan.RegisterRoutes(r, svc, careplan.NewBatchRunner(svc, 2))
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestScheduleHandler_OK(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := doJSON(t, h, http.MethodPost, "/schedule", map[string]any{
		"animal_id":      "dog-1",
		"species":        "Dog",
		"birth_date":     "2024-01-01",
		"reference_time": "2024-01-01",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var out scheduleBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "dog-1", out.AnimalID)
	require.Len(t, out.Events, 2)
	assert.Equal(t, "Parvovirus", out.Events[0].Name)
	assert.Equal(t, "2024-02-12", out.Events[0].DueDate)
	assert.Equal(t, "Distemper", out.Events[1].Name)
	assert.Equal(t, "2024-02-26", out.Events[1].DueDate)
	assert.Equal(t, "vaccine", out.Events[0].Kind)
	assert.NotNil(t, out.Warnings)
}

func TestScheduleHandler_LimitAndGeneratedID(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := doJSON(t, h, http.MethodPost, "/schedule", map[string]any{
		"species":        "dog",
		"birth_date":     "2024-01-01",
		"reference_time": "2024-01-01T00:00:00Z",
		"limit":          1,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var out scheduleBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.NotEmpty(t, out.AnimalID)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "Parvovirus", out.Events[0].Name)
	assert.Equal(t, out.AnimalID, out.Events[0].AnimalID)
}

func TestScheduleHandler_BadRequests(t *testing.T) {
	h := newTestHandler(t, nil)

	cases := map[string]map[string]any{
		"bad birth date":     {"species": "dog", "birth_date": "2024/01/01", "reference_time": "2024-01-01"},
		"missing species":    {"birth_date": "2024-01-01", "reference_time": "2024-01-01"},
		"bad reference time": {"species": "dog", "birth_date": "2024-01-01", "reference_time": "soon"},
		"horizon too large":  {"species": "dog", "birth_date": "2024-01-01", "reference_time": "2024-01-01", "horizon_cycles": 1000},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := doJSON(t, h, http.MethodPost, "/schedule", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/schedule", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBatchHandler_PerAnimalErrors(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := doJSON(t, h, http.MethodPost, "/schedule/batch", map[string]any{
		"reference_time": "2024-01-01",
		"animals": []map[string]any{
			{"id": "ok", "species": "dog", "birth_date": "2024-01-01"},
			{"id": "bad", "species": "dog", "birth_date": "nope"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var out struct {
		Results []struct {
			scheduleBody
			Error string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out.Results, 2)

	assert.Equal(t, "ok", out.Results[0].AnimalID)
	assert.Len(t, out.Results[0].Events, 2)
	assert.Empty(t, out.Results[0].Error)

	assert.Equal(t, "bad", out.Results[1].AnimalID)
	assert.NotEmpty(t, out.Results[1].Error)
	require.Len(t, out.Results[1].Warnings, 1)
	assert.Equal(t, "invalid_input", out.Results[1].Warnings[0].Code)
}

func TestAnimalScheduleHandler(t *testing.T) {
	h := newTestHandler(t, fakeProfiles{
		"dog-1": {ID: "dog-1", Species: careplan.SpeciesDog, BirthDate: date(2024, 1, 1)},
	})

	rr := doJSON(t, h, http.MethodGet, "/animals/dog-1/schedule?at=2024-01-01", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var out scheduleBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Len(t, out.Events, 2)

	// preview usa el límite configurado (1)
	rr = doJSON(t, h, http.MethodGet, "/animals/dog-1/schedule?at=2024-01-01&preview=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	out = scheduleBody{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Len(t, out.Events, 1)

	rr = doJSON(t, h, http.MethodGet, "/animals/missing/schedule?at=2024-01-01", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/animals/dog-1/schedule?horizon=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCatalogHandler(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := doJSON(t, h, http.MethodGet, "/catalog/DOG", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Species  string `json:"species"`
		Vaccines []struct {
			Name        string `json:"name"`
			OffsetWeeks int    `json:"offset_weeks"`
		} `json:"vaccines"`
		Medications []json.RawMessage `json:"medications"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "dog", out.Species)
	require.Len(t, out.Vaccines, 2)
	assert.Equal(t, 6, out.Vaccines[0].OffsetWeeks)
	assert.NotNil(t, out.Medications)

	rr = doJSON(t, h, http.MethodGet, "/catalog/hamster", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"vaccines":[]`)
}
