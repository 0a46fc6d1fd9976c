package careplan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func RegisterRoutes(r chi.Router, svc *Service, batch *BatchRunner) {
	r.Route("/schedule", func(sr chi.Router) {
		sr.Post("/", buildScheduleHandler(svc))
		sr.Post("/batch", buildBatchHandler(svc, batch))
	})

	// Calendario de un animal guardado (el preview es ?limit=K)
	r.Get("/animals/{animalID}/schedule", animalScheduleHandler(svc))

	r.Get("/catalog/{species}", catalogHandler(svc))
}

// scheduleRequest es el cuerpo para calcular el calendario de un animal ad-hoc.
type scheduleRequest struct {
	AnimalID      string            `json:"animal_id"`
	Species       string            `json:"species" example:"dog"`
	BirthDate     string            `json:"birth_date" example:"2024-01-01"` // YYYY-MM-DD
	Administered  []RawAdministered `json:"administered"`
	ReferenceTime string            `json:"reference_time"` // RFC3339 o YYYY-MM-DD, opcional
	HorizonCycles int               `json:"horizon_cycles"` // opcional, default 4
	Limit         int               `json:"limit"`          // opcional, preview
}

type batchRequest struct {
	ReferenceTime string      `json:"reference_time"`
	HorizonCycles int         `json:"horizon_cycles"`
	Animals       []RawAnimal `json:"animals"`
}

// eventResponse es un evento preventivo agendado.
type eventResponse struct {
	AnimalID    string   `json:"animal_id"`
	Name        string   `json:"name"`
	DueDate     string   `json:"due_date"`
	Priority    Priority `json:"priority" enums:"Core,Important,Seasonal,Rare"`
	Recurring   bool     `json:"recurring"`
	Kind        Kind     `json:"kind" enums:"vaccine,medication"`
	Cycle       int      `json:"cycle"`
	ShiftedDays int      `json:"shifted_days"`
}

type warningResponse struct {
	Code     WarningCode `json:"code" enums:"scheduling_overflow,invalid_input"`
	AnimalID string      `json:"animal_id,omitempty"`
	Item     string      `json:"item,omitempty"`
	Date     string      `json:"date,omitempty"`
	Message  string      `json:"message"`
}

type scheduleResponse struct {
	AnimalID string            `json:"animal_id"`
	Events   []eventResponse   `json:"events"`
	Warnings []warningResponse `json:"warnings"`
}

type batchItemResponse struct {
	scheduleResponse
	Error string `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItemResponse `json:"results"`
}

type catalogEntryResponse struct {
	Name        string   `json:"name"`
	Priority    Priority `json:"priority"`
	Recurring   bool     `json:"recurring"`
	OffsetWeeks int      `json:"offset_weeks"`
}

type medicationResponse struct {
	Name            string   `json:"name"`
	Priority        Priority `json:"priority"`
	BaseOffsetWeeks int      `json:"base_offset_weeks"`
	CadenceWeeks    int      `json:"cadence_weeks"`
}

type catalogResponse struct {
	Species     Species                `json:"species"`
	Vaccines    []catalogEntryResponse `json:"vaccines"`
	Medications []medicationResponse   `json:"medications"`
}

// buildScheduleHandler godoc
// @Summary Calcular calendario preventivo
// @Description Calcula las próximas fechas de vacunas y medicaciones periódicas para un animal. Los ítems no recurrentes ya aplicados se omiten. Ningún evento cae en o antes de `reference_time`.
// @Tags schedule
// @Accept json
// @Produce json
// @Param payload body scheduleRequest true "Animal y parámetros; birth_date en formato YYYY-MM-DD"
// @Success 200 {object} scheduleResponse
// @Failure 400 {string} string "invalid json / birth_date inválido / species requerido"
// @Router /schedule [post]
func buildScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ref, err := referenceTime(req.ReferenceTime, svc.now)
		if err != nil {
			http.Error(w, "reference_time must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		id := strings.TrimSpace(req.AnimalID)
		if id == "" {
			id = uuid.NewString()
		}

		p, err := ParseProfile(RawAnimal{
			ID:           id,
			Species:      req.Species,
			BirthDate:    req.BirthDate,
			Administered: req.Administered,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := svc.Build(r.Context(), p, ref, req.HorizonCycles)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(res, req.Limit))
	}
}

// buildBatchHandler godoc
// @Summary Calcular calendarios en lote
// @Description Calcula el calendario de varios animales. Un registro inválido no hace fallar el lote: se informa en su propio resultado con `error` y un warning `invalid_input`.
// @Tags schedule
// @Accept json
// @Produce json
// @Param payload body batchRequest true "Animales y parámetros comunes"
// @Success 200 {object} batchResponse
// @Failure 400 {string} string "invalid json / reference_time inválido"
// @Router /schedule/batch [post]
func buildBatchHandler(svc *Service, batch *BatchRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ref, err := referenceTime(req.ReferenceTime, svc.now)
		if err != nil {
			http.Error(w, "reference_time must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		results := batch.Run(r.Context(), req.Animals, ref, req.HorizonCycles)

		out := batchResponse{Results: make([]batchItemResponse, 0, len(results))}
		for _, br := range results {
			item := batchItemResponse{scheduleResponse: toScheduleResponse(br.Result, 0)}
			if br.Err != nil {
				item.Error = br.Err.Error()
			}
			out.Results = append(out.Results, item)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// animalScheduleHandler godoc
// @Summary Calendario de un animal registrado
// @Description Calcula el calendario a partir del registro guardado del animal (especie, fecha de nacimiento, ítems aplicados). `limit` trunca a los primeros K eventos (preview).
// @Tags schedule
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param at query string false "Fecha de referencia (RFC3339 o YYYY-MM-DD). Por defecto: ahora"
// @Param horizon query int false "Ciclos futuros por ítem recurrente. Por defecto 4"
// @Param limit query int false "Máximo de eventos a devolver (preview)"
// @Param preview query bool false "Trunca al límite de preview configurado (SCHEDULE_PREVIEW_LIMIT) si no viene limit"
// @Success 200 {object} scheduleResponse
// @Failure 400 {string} string "parámetros inválidos / animal sin birth_date"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/schedule [get]
func animalScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID := chi.URLParam(r, "animalID")

		ref, err := referenceTime(r.URL.Query().Get("at"), svc.now)
		if err != nil {
			http.Error(w, "at must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		horizon := 0
		if v := strings.TrimSpace(r.URL.Query().Get("horizon")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "horizon must be a positive integer", http.StatusBadRequest)
				return
			}
			horizon = n
		}

		limit := 0
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		} else if preview, _ := strconv.ParseBool(r.URL.Query().Get("preview")); preview {
			limit = svc.PreviewLimit()
		}

		res, err := svc.ScheduleFor(r.Context(), animalID, ref, horizon)
		if err != nil {
			switch {
			case errors.Is(err, ErrAnimalNotFound):
				http.Error(w, "animal not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(res, limit))
	}
}

// catalogHandler godoc
// @Summary Catálogo preventivo de una especie
// @Description Devuelve vacunas y medicaciones periódicas configuradas. Una especie desconocida devuelve listas vacías.
// @Tags catalog
// @Produce json
// @Param species path string true "Especie (dog, cat, rabbit, fish, ...)"
// @Success 200 {object} catalogResponse
// @Router /catalog/{species} [get]
func catalogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		species := NormalizeSpecies(chi.URLParam(r, "species"))
		resolver := svc.Engine().Resolver()

		out := catalogResponse{
			Species:     species,
			Vaccines:    make([]catalogEntryResponse, 0),
			Medications: make([]medicationResponse, 0),
		}
		for _, e := range resolver.EntriesFor(species) {
			out.Vaccines = append(out.Vaccines, catalogEntryResponse{
				Name:        e.Name,
				Priority:    e.Priority,
				Recurring:   e.Recurring,
				OffsetWeeks: e.OffsetWeeks,
			})
		}
		for _, m := range resolver.PeriodicMedicationsFor(species) {
			out.Medications = append(out.Medications, medicationResponse{
				Name:            m.Name,
				Priority:        m.Priority,
				BaseOffsetWeeks: m.BaseOffsetWeeks,
				CadenceWeeks:    m.CadenceWeeks,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func referenceTime(raw string, now func() time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return now(), nil
	}
	return ParseDate(raw)
}

func toScheduleResponse(res Result, limit int) scheduleResponse {
	events := Preview(res.Events, limit)

	out := scheduleResponse{
		AnimalID: res.AnimalID,
		Events:   make([]eventResponse, 0, len(events)),
		Warnings: make([]warningResponse, 0, len(res.Warnings)),
	}
	for _, e := range events {
		out.Events = append(out.Events, eventResponse{
			AnimalID:    e.AnimalID,
			Name:        e.Name,
			DueDate:     e.DueDate.Format(DateLayout),
			Priority:    e.Priority,
			Recurring:   e.Recurring,
			Kind:        e.Kind,
			Cycle:       e.Cycle,
			ShiftedDays: e.ShiftedDays,
		})
	}
	for _, w := range res.Warnings {
		wr := warningResponse{
			Code:     w.Code,
			AnimalID: w.AnimalID,
			Item:     w.Item,
			Message:  w.Message,
		}
		if w.Date != nil {
			wr.Date = w.Date.Format(DateLayout)
		}
		out.Warnings = append(out.Warnings, wr)
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (animals/careplan) para no crear un paquete de helpers tan temprano.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
