package volunteers

import (
	"net/http"
	"time"

	"pet-shelter/internal/platform/respond"
	"pet-shelter/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/volunteers", func(vr chi.Router) {
		vr.Post("/", createVolunteerHandler(svc))
		vr.Get("/", listVolunteersHandler(svc))
		vr.Get("/{chatID}", getVolunteerHandler(svc))
		vr.Put("/{chatID}", updateVolunteerHandler(svc))
		vr.Delete("/{chatID}", deleteVolunteerHandler(svc))
	})
}

type createVolunteerRequest struct {
	ChatID string `json:"chat_id" validate:"alias"`
	Name   string `json:"name" validate:"notblank"`
	Age    int    `json:"age" validate:"gte=0"`
	Sex    bool   `json:"sex"`
}

type updateVolunteerRequest struct {
	Name string `json:"name" validate:"notblank"`
	Age  int    `json:"age" validate:"gte=0"`
	Sex  bool   `json:"sex"`
}

type volunteerResponse struct {
	ChatID    string    `json:"chat_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Sex       bool      `json:"sex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createVolunteerHandler godoc
// @Summary Alta de voluntario
// @Tags volunteers
// @Accept json
// @Produce json
// @Param payload body createVolunteerRequest true "Datos del voluntario"
// @Success 201 {object} volunteerResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "alias en uso"
// @Router /volunteers [post]
func createVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVolunteerRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "volunteer")
			return
		}

		v, err := svc.Add(r.Context(), Volunteer{
			ChatID: req.ChatID,
			Name:   req.Name,
			Age:    req.Age,
			Sex:    req.Sex,
		})
		if err != nil {
			respond.Error(w, err, "volunteer")
			return
		}
		respond.JSON(w, http.StatusCreated, toVolunteerResponse(v))
	}
}

// listVolunteersHandler godoc
// @Summary Listar voluntarios
// @Tags volunteers
// @Produce json
// @Success 200 {array} volunteerResponse
// @Router /volunteers [get]
func listVolunteersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.All(r.Context())
		if err != nil {
			respond.Error(w, err, "volunteer")
			return
		}

		out := make([]volunteerResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVolunteerResponse(v))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getVolunteerHandler godoc
// @Summary Obtener voluntario
// @Tags volunteers
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Success 200 {object} volunteerResponse
// @Failure 404 {string} string "volunteer not found"
// @Router /volunteers/{chatID} [get]
func getVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), chi.URLParam(r, "chatID"))
		if err != nil {
			respond.Error(w, err, "volunteer")
			return
		}
		respond.JSON(w, http.StatusOK, toVolunteerResponse(v))
	}
}

// updateVolunteerHandler godoc
// @Summary Actualizar voluntario
// @Tags volunteers
// @Accept json
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Param payload body updateVolunteerRequest true "Nuevos datos"
// @Success 200 {object} volunteerResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "volunteer not found"
// @Router /volunteers/{chatID} [put]
func updateVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateVolunteerRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "volunteer")
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "chatID"), Volunteer{
			Name: req.Name,
			Age:  req.Age,
			Sex:  req.Sex,
		})
		if err != nil {
			respond.Error(w, err, "volunteer")
			return
		}
		respond.JSON(w, http.StatusOK, toVolunteerResponse(v))
	}
}

// deleteVolunteerHandler godoc
// @Summary Borrar voluntario
// @Description Idempotente.
// @Tags volunteers
// @Param chatID path string true "Alias de chat"
// @Success 204
// @Router /volunteers/{chatID} [delete]
func deleteVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "chatID")); err != nil {
			respond.Error(w, err, "volunteer")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toVolunteerResponse(v Volunteer) volunteerResponse {
	return volunteerResponse{
		ChatID:    v.ChatID,
		Name:      v.Name,
		Age:       v.Age,
		Sex:       v.Sex,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
