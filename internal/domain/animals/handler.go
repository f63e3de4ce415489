package animals

import (
	"net/http"
	"strconv"
	"time"

	"pet-shelter/internal/platform/respond"
	"pet-shelter/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

// animalRequest es el cuerpo para crear o actualizar un animal.
// En update, "kind" se ignora (la variante no cambia).
type animalRequest struct {
	Kind      string `json:"kind" enums:"cat,dog"`
	Name      string `json:"name" validate:"notblank"`
	Age       int    `json:"age" validate:"gte=0"`
	Sex       bool   `json:"sex"`
	ShelterID int64  `json:"shelter_id" validate:"gt=0"`
}

type animalResponse struct {
	ID        int64     `json:"id"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Sex       bool      `json:"sex"`
	ShelterID int64     `json:"shelter_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createAnimalHandler godoc
// @Summary Alta de animal
// @Description Registra un gato o perro en un refugio. El refugio debe existir y alojar esa especie.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body animalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid input"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "animal")
			return
		}

		a, err := svc.Add(r.Context(), req.toAnimal())
		if err != nil {
			respond.Error(w, err, "animal")
			return
		}

		respond.JSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.All(r.Context())
		if err != nil {
			respond.Error(w, err, "animal")
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path int true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		a, err := svc.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, err, "animal")
			return
		}
		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Reemplaza name, age, sex y shelter_id. El ID y la especie no cambian.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param payload body animalRequest true "Nuevos datos"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req animalRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "animal")
			return
		}

		a, err := svc.Update(r.Context(), id, req.toAnimal())
		if err != nil {
			respond.Error(w, err, "animal")
			return
		}
		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Description Idempotente. Un animal asignado a un adoptante devuelve 409.
// @Tags animals
// @Param animalID path int true "ID del animal"
// @Success 204
// @Failure 409 {string} string "conflict"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, err, "animal")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (req animalRequest) toAnimal() Animal {
	return Animal{
		Kind:      Kind(req.Kind),
		Name:      req.Name,
		Age:       req.Age,
		Sex:       req.Sex,
		ShelterID: req.ShelterID,
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		Kind:      a.Kind,
		Name:      a.Name,
		Age:       a.Age,
		Sex:       a.Sex,
		ShelterID: a.ShelterID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "animalID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "animal id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
