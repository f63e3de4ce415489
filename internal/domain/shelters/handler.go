package shelters

import (
	"net/http"
	"strconv"
	"time"

	"pet-shelter/internal/platform/respond"
	"pet-shelter/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/shelters", func(sr chi.Router) {
		sr.Post("/", createShelterHandler(svc))
		sr.Get("/", listSheltersHandler(svc))
		sr.Get("/{shelterID}", getShelterHandler(svc))
		sr.Put("/{shelterID}", updateShelterHandler(svc))
		sr.Delete("/{shelterID}", deleteShelterHandler(svc))
	})
}

type shelterRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Address     string `json:"address"`
	Info        string `json:"info"`
	Instruction string `json:"instruction"`
	PetType     string `json:"pet_type" validate:"required" enums:"CAT,DOG"`
}

type shelterResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Info        string    `json:"info"`
	Instruction string    `json:"instruction"`
	PetType     PetType   `json:"pet_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createShelterHandler godoc
// @Summary Alta de refugio
// @Tags shelters
// @Accept json
// @Produce json
// @Param payload body shelterRequest true "Datos del refugio"
// @Success 201 {object} shelterResponse
// @Failure 400 {string} string "invalid input"
// @Router /shelters [post]
func createShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shelterRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "shelter")
			return
		}

		sh, err := svc.Add(r.Context(), req.toShelter())
		if err != nil {
			respond.Error(w, err, "shelter")
			return
		}
		respond.JSON(w, http.StatusCreated, toShelterResponse(sh))
	}
}

// listSheltersHandler godoc
// @Summary Listar refugios
// @Tags shelters
// @Produce json
// @Success 200 {array} shelterResponse
// @Router /shelters [get]
func listSheltersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.All(r.Context())
		if err != nil {
			respond.Error(w, err, "shelter")
			return
		}

		out := make([]shelterResponse, 0, len(items))
		for _, sh := range items {
			out = append(out, toShelterResponse(sh))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getShelterHandler godoc
// @Summary Obtener refugio
// @Tags shelters
// @Produce json
// @Param shelterID path int true "ID del refugio"
// @Success 200 {object} shelterResponse
// @Failure 404 {string} string "shelter not found"
// @Router /shelters/{shelterID} [get]
func getShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		sh, err := svc.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, err, "shelter")
			return
		}
		respond.JSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

// updateShelterHandler godoc
// @Summary Actualizar refugio
// @Tags shelters
// @Accept json
// @Produce json
// @Param shelterID path int true "ID del refugio"
// @Param payload body shelterRequest true "Nuevos datos"
// @Success 200 {object} shelterResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "shelter not found"
// @Failure 409 {string} string "hay animales de otra especie"
// @Router /shelters/{shelterID} [put]
func updateShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req shelterRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "shelter")
			return
		}

		sh, err := svc.Update(r.Context(), id, req.toShelter())
		if err != nil {
			respond.Error(w, err, "shelter")
			return
		}
		respond.JSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

// deleteShelterHandler godoc
// @Summary Borrar refugio
// @Description Idempotente. Si el refugio todavía tiene animales responde 409.
// @Tags shelters
// @Produce json
// @Param shelterID path int true "ID del refugio"
// @Success 200 {object} respond.MessageResponse
// @Failure 409 {string} string "conflict"
// @Router /shelters/{shelterID} [delete]
func deleteShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		msg, err := svc.Delete(r.Context(), id)
		if err != nil {
			respond.Error(w, err, "shelter")
			return
		}
		respond.Message(w, http.StatusOK, msg)
	}
}

func (req shelterRequest) toShelter() Shelter {
	return Shelter{
		Name:        req.Name,
		Address:     req.Address,
		Info:        req.Info,
		Instruction: req.Instruction,
		PetType:     PetType(req.PetType),
	}
}

func toShelterResponse(sh Shelter) shelterResponse {
	return shelterResponse{
		ID:          sh.ID,
		Name:        sh.Name,
		Address:     sh.Address,
		Info:        sh.Info,
		Instruction: sh.Instruction,
		PetType:     sh.PetType,
		CreatedAt:   sh.CreatedAt,
		UpdatedAt:   sh.UpdatedAt,
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "shelterID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "shelter id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
