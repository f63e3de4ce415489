package parents

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pet-shelter/internal/platform/respond"
	"pet-shelter/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/parents", func(pr chi.Router) {
		pr.Post("/", createParentHandler(svc))
		pr.Get("/", listParentsHandler(svc))

		// Para el scheduler: quiénes tienen reporte hoy (o en ?date=) y mandarles recordatorio
		pr.Get("/due-reports", dueReportsHandler(svc))
		pr.Post("/reminders", remindHandler(svc))

		pr.Get("/{chatID}", getParentHandler(svc))
		pr.Put("/{chatID}", updateParentHandler(svc))
		pr.Delete("/{chatID}", deleteParentHandler(svc))

		// Flujo de adopción
		pr.Put("/{chatID}/animal", addAnimalHandler(svc))
		pr.Put("/{chatID}/report-date", addDateOfReportHandler(svc))
		pr.Post("/{chatID}/probation/complete", completeProbationHandler(svc))
		pr.Post("/{chatID}/probation/fail", failProbationHandler(svc))
	})

	// Notificaciones por user name (no por alias de chat)
	r.Route("/messages", func(mr chi.Router) {
		mr.Post("/", sendMessageHandler(svc))
		mr.Post("/congratulations", sendCongratulationsHandler(svc))
		mr.Post("/adoption-failed", sendAdoptionFailedHandler(svc))
	})
}

type createParentRequest struct {
	ChatID   string `json:"chat_id" validate:"alias"`
	UserName string `json:"user_name"`
	Name     string `json:"name"`
	Age      int    `json:"age" validate:"gte=0"`
	Sex      bool   `json:"sex"`
}

// updateParentRequest: animal_id y report_date se aceptan pero se ignoran;
// solo cambian por los endpoints del flujo de adopción.
type updateParentRequest struct {
	Name       string  `json:"name"`
	Age        int     `json:"age" validate:"gte=0"`
	Sex        bool    `json:"sex"`
	UserName   string  `json:"user_name,omitempty"`
	AnimalID   *int64  `json:"animal_id,omitempty"`
	ReportDate *string `json:"report_date,omitempty"`
}

type addAnimalRequest struct {
	AnimalID int64 `json:"animal_id" validate:"gt=0"`
}

type reportDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type messageRequest struct {
	UserName string `json:"user_name" validate:"notblank"`
	Text     string `json:"text" validate:"notblank"`
}

type userNameRequest struct {
	UserName string `json:"user_name" validate:"notblank"`
}

type parentResponse struct {
	ChatID             string          `json:"chat_id"`
	UserName           string          `json:"user_name,omitempty"`
	Name               string          `json:"name"`
	Age                int             `json:"age"`
	Sex                bool            `json:"sex"`
	AnimalID           *int64          `json:"animal_id,omitempty"`
	ReportDate         *string         `json:"report_date,omitempty"` // YYYY-MM-DD
	Probation          ProbationStatus `json:"probation"`
	ProbationStartedAt *time.Time      `json:"probation_started_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type remindResponse struct {
	Date string `json:"date"`
	Sent int    `json:"sent"`
}

// createParentHandler godoc
// @Summary Alta de adoptante
// @Description Crea un adoptante con el alias de chat que envía el cliente. Alias o user name repetido => 409.
// @Tags parents
// @Accept json
// @Produce json
// @Param payload body createParentRequest true "Datos del adoptante"
// @Success 201 {object} parentResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "already exists"
// @Router /parents [post]
func createParentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createParentRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "parent")
			return
		}

		p, err := svc.Add(r.Context(), Parent{
			ChatID:   req.ChatID,
			UserName: req.UserName,
			Name:     req.Name,
			Age:      req.Age,
			Sex:      req.Sex,
		})
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusCreated, toParentResponse(p))
	}
}

// listParentsHandler godoc
// @Summary Listar adoptantes
// @Tags parents
// @Produce json
// @Success 200 {array} parentResponse
// @Router /parents [get]
func listParentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.All(r.Context())
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusOK, toParentResponses(items))
	}
}

// getParentHandler godoc
// @Summary Obtener adoptante
// @Tags parents
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Success 200 {object} parentResponse
// @Failure 404 {string} string "parent not found"
// @Router /parents/{chatID} [get]
func getParentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "chatID"))
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusOK, toParentResponse(p))
	}
}

// updateParentHandler godoc
// @Summary Actualizar datos personales del adoptante
// @Description Solo cambia name, age y sex. El animal asignado y la fecha de reporte no se tocan.
// @Tags parents
// @Accept json
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Param payload body updateParentRequest true "Datos personales"
// @Success 200 {object} parentResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "parent not found"
// @Router /parents/{chatID} [put]
func updateParentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateParentRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "parent")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "chatID"), Parent{
			Name:     req.Name,
			Age:      req.Age,
			Sex:      req.Sex,
			UserName: req.UserName,
			AnimalID: req.AnimalID,
		})
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusOK, toParentResponse(p))
	}
}

// deleteParentHandler godoc
// @Summary Borrar adoptante
// @Description Idempotente. Devuelve un mensaje de confirmación.
// @Tags parents
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Success 200 {object} respond.MessageResponse
// @Router /parents/{chatID} [delete]
func deleteParentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, err := svc.Delete(r.Context(), chi.URLParam(r, "chatID"))
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.Message(w, http.StatusOK, msg)
	}
}

// addAnimalHandler godoc
// @Summary Asignar animal al adoptante
// @Description Abre el período de prueba. Pisa la asignación anterior. Animal ya asignado a otro adoptante => 409.
// @Tags parents
// @Accept json
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Param payload body addAnimalRequest true "Animal"
// @Success 200 {object} parentResponse
// @Failure 404 {string} string "parent or animal not found"
// @Failure 409 {string} string "conflict"
// @Router /parents/{chatID}/animal [put]
func addAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addAnimalRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "parent")
			return
		}

		p, err := svc.AddAnimal(r.Context(), chi.URLParam(r, "chatID"), req.AnimalID)
		if err != nil {
			respond.Error(w, err, "parent or animal")
			return
		}
		respond.JSON(w, http.StatusOK, toParentResponse(p))
	}
}

// addDateOfReportHandler godoc
// @Summary Registrar próxima fecha de reporte
// @Description La fecha solo puede avanzar; una fecha anterior a la guardada => 400. Sin período de prueba => 409.
// @Tags parents
// @Accept json
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Param payload body reportDateRequest true "Fecha YYYY-MM-DD"
// @Success 200 {object} parentResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "parent not found"
// @Failure 409 {string} string "invalid state"
// @Router /parents/{chatID}/report-date [put]
func addDateOfReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportDateRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "parent")
			return
		}
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.AddDateOfReport(r.Context(), chi.URLParam(r, "chatID"), d)
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusOK, toParentResponse(p))
	}
}

// completeProbationHandler godoc
// @Summary Cerrar período de prueba (aprobado)
// @Description Registra el resultado y envía la felicitación al user name del adoptante.
// @Tags parents
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Success 200 {object} parentResponse
// @Failure 404 {string} string "parent not found"
// @Failure 409 {string} string "invalid state"
// @Router /parents/{chatID}/probation/complete [post]
func completeProbationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.CompleteProbation(r.Context(), chi.URLParam(r, "chatID"))
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusOK, toParentResponse(p))
	}
}

// failProbationHandler godoc
// @Summary Cerrar período de prueba (no aprobado)
// @Description Registra el resultado, libera el animal y avisa al adoptante.
// @Tags parents
// @Produce json
// @Param chatID path string true "Alias de chat"
// @Success 200 {object} parentResponse
// @Failure 404 {string} string "parent not found"
// @Failure 409 {string} string "invalid state"
// @Router /parents/{chatID}/probation/fail [post]
func failProbationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.FailProbation(r.Context(), chi.URLParam(r, "chatID"))
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusOK, toParentResponse(p))
	}
}

// dueReportsHandler godoc
// @Summary Adoptantes con reporte en la fecha
// @Tags parents
// @Produce json
// @Param date query string false "YYYY-MM-DD (default hoy)"
// @Success 200 {array} parentResponse
// @Failure 400 {string} string "invalid date"
// @Router /parents/due-reports [get]
func dueReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, ok := parseDay(w, r, svc.now)
		if !ok {
			return
		}

		items, err := svc.DueReports(r.Context(), day)
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusOK, toParentResponses(items))
	}
}

// remindHandler godoc
// @Summary Enviar recordatorio de reporte
// @Description Manda el recordatorio a cada adoptante con reporte en la fecha. La entrega es asíncrona.
// @Tags parents
// @Produce json
// @Param date query string false "YYYY-MM-DD (default hoy)"
// @Success 202 {object} remindResponse
// @Router /parents/reminders [post]
func remindHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, ok := parseDay(w, r, svc.now)
		if !ok {
			return
		}

		sent, err := svc.RemindDueReports(r.Context(), day)
		if err != nil {
			respond.Error(w, err, "parent")
			return
		}
		respond.JSON(w, http.StatusAccepted, remindResponse{Date: Day(day).Format(time.DateOnly), Sent: sent})
	}
}

// sendMessageHandler godoc
// @Summary Enviar mensaje a un adoptante
// @Tags messages
// @Accept json
// @Param payload body messageRequest true "Destino y texto"
// @Success 202
// @Failure 400 {string} string "invalid input"
// @Router /messages [post]
func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messageRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "parent")
			return
		}
		if err := svc.SendMessageToParent(r.Context(), req.UserName, req.Text); err != nil {
			respond.Error(w, err, "parent")
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// sendCongratulationsHandler godoc
// @Summary Enviar felicitación (sin registrar resultado)
// @Tags messages
// @Accept json
// @Param payload body userNameRequest true "Destino"
// @Success 202
// @Router /messages/congratulations [post]
func sendCongratulationsHandler(svc *Service) http.HandlerFunc {
	return userNameMessage(svc.SendCongratulatoryMessage)
}

// sendAdoptionFailedHandler godoc
// @Summary Enviar aviso de adopción fallida (sin registrar resultado)
// @Tags messages
// @Accept json
// @Param payload body userNameRequest true "Destino"
// @Success 202
// @Router /messages/adoption-failed [post]
func sendAdoptionFailedHandler(svc *Service) http.HandlerFunc {
	return userNameMessage(svc.SendMessageAdoptionFailed)
}

func userNameMessage(send func(ctx context.Context, userName string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userNameRequest
		if err := validation.DecodeJSON(r.Body, &req); err != nil {
			respond.Error(w, err, "parent")
			return
		}
		if err := send(r.Context(), req.UserName); err != nil {
			respond.Error(w, err, "parent")
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

func parseDay(w http.ResponseWriter, r *http.Request, now func() time.Time) (time.Time, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return Day(now()), true
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return d, true
}

func toParentResponses(items []Parent) []parentResponse {
	out := make([]parentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toParentResponse(p))
	}
	return out
}

func toParentResponse(p Parent) parentResponse {
	var rd *string
	if p.ReportDate != nil {
		s := p.ReportDate.Format(time.DateOnly)
		rd = &s
	}
	return parentResponse{
		ChatID:             p.ChatID,
		UserName:           p.UserName,
		Name:               p.Name,
		Age:                p.Age,
		Sex:                p.Sex,
		AnimalID:           p.AnimalID,
		ReportDate:         rd,
		Probation:          p.Probation,
		ProbationStartedAt: p.ProbationStartedAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
