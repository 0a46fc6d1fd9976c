package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))

		// Registrar un ítem preventivo ya aplicado
		ar.Post("/{animalID}/administered", recordAdministeredHandler(svc))
	})
}

type administeredRequest struct {
	Name           string `json:"name"`
	Priority       string `json:"priority" enums:"Core,Important,Seasonal,Rare"` // opcional
	AdministeredAt string `json:"administered_at"`                               // YYYY-MM-DD opcional
}

// createAnimalRequest es el cuerpo para registrar un animal.
type createAnimalRequest struct {
	Name         string                `json:"name"`
	Species      string                `json:"species" example:"dog"`
	BirthDate    string                `json:"birth_date" example:"2024-01-01"` // YYYY-MM-DD opcional
	Administered []administeredRequest `json:"administered"`
}

type administeredResponse struct {
	Name           string     `json:"name"`
	Priority       string     `json:"priority,omitempty"`
	AdministeredAt *time.Time `json:"administered_at,omitempty"`
}

type animalResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Species      string                 `json:"species"`
	BirthDate    *time.Time             `json:"birth_date,omitempty"`
	Administered []administeredResponse `json:"administered"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Registra un animal con su especie, fecha de nacimiento y los ítems preventivos ya aplicados.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / birth_date inválido / reglas de negocio"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := parseOptionalDate(req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		items := make([]Administered, 0, len(req.Administered))
		for _, it := range req.Administered {
			at, err := parseOptionalDate(it.AdministeredAt)
			if err != nil {
				http.Error(w, "administered_at must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			items = append(items, Administered{Name: it.Name, Priority: it.Priority, AdministeredAt: at})
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Species:      req.Species,
			BirthDate:    bd,
			Administered: items,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {string} string "internal error"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// recordAdministeredHandler godoc
// @Summary Registrar ítem aplicado
// @Description Agrega una vacuna o medicación ya aplicada. Los ítems no recurrentes registrados dejan de aparecer en el calendario.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body administeredRequest true "Ítem aplicado"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/administered [post]
func recordAdministeredHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID := chi.URLParam(r, "animalID")

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req administeredRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		at, err := parseOptionalDate(req.AdministeredAt)
		if err != nil {
			http.Error(w, "administered_at must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		updated, err := svc.RecordAdministered(r.Context(), animalID, Administered{
			Name:           req.Name,
			Priority:       req.Priority,
			AdministeredAt: at,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toAnimalResponse(a Animal) animalResponse {
	items := make([]administeredResponse, 0, len(a.Administered))
	for _, it := range a.Administered {
		items = append(items, administeredResponse{
			Name:           it.Name,
			Priority:       it.Priority,
			AdministeredAt: it.AdministeredAt,
		})
	}
	return animalResponse{
		ID:           a.ID,
		Name:         a.Name,
		Species:      a.Species,
		BirthDate:    a.BirthDate,
		Administered: items,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (animals/careplan) para no crear un paquete de helpers tan temprano.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
