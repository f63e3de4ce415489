package parents

import (
	"context"
	"strings"
	"time"

	"pet-shelter/internal/domain/apperr"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNotFound     = apperr.ErrNotFound
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrDuplicate    = apperr.ErrDuplicate
	ErrConflict     = apperr.ErrConflict
	ErrBadState     = apperr.ErrBadState
	ErrUnavailable  = apperr.ErrUnavailable
)

const (
	DeletedMessage = "parent deleted"

	MessageCongratulations = "Congratulations! You have successfully completed the probation period. The pet is officially part of your family."
	MessageAdoptionFailed  = "Unfortunately, the probation period was not passed. A shelter volunteer will contact you to arrange the pet's return."
	MessageReportReminder  = "Reminder: your adoption report is due today. Please send a photo of the pet, its diet and a short note on its well-being."
)

var tracer = otel.Tracer("pet-shelter/internal/domain/parents")

// Notifier entrega un mensaje a un usuario identificado por su user name.
// Es fire-and-forget: los errores de entrega se loguean del otro lado, nunca vuelven acá.
type Notifier interface {
	Notify(ctx context.Context, userName, text string)
}

type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Add da de alta un adoptante. Los campos de adopción (animal, fecha de reporte)
// se ignoran: solo los tocan las operaciones del flujo de prueba.
func (s *Service) Add(ctx context.Context, p Parent) (Parent, error) {
	p.ChatID = strings.TrimSpace(p.ChatID)
	if p.ChatID == "" {
		return Parent{}, ErrInvalidInput
	}
	p.UserName = normalizeUserName(p.UserName)
	p.Name = strings.TrimSpace(p.Name)
	if p.Age < 0 {
		return Parent{}, ErrInvalidInput
	}

	now := s.now()
	p.AnimalID = nil
	p.ReportDate = nil
	p.Probation = ProbationUnassigned
	p.ProbationStartedAt = nil
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return Parent{}, apperr.Storage(err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, chatID string) (Parent, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return Parent{}, ErrNotFound
	}
	p, err := s.repo.GetByChatID(ctx, chatID)
	if err != nil {
		return Parent{}, apperr.Storage(err)
	}
	return p, nil
}

func (s *Service) GetByUserName(ctx context.Context, userName string) (Parent, error) {
	userName = normalizeUserName(userName)
	if userName == "" {
		return Parent{}, ErrNotFound
	}
	p, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		return Parent{}, apperr.Storage(err)
	}
	return p, nil
}

// Update solo pisa age, name y sex. Alias, user name, animal asignado y fecha de reporte
// quedan intactos aunque el patch traiga valores: el voluntario edita datos personales
// sin tocar el estado de adopción.
func (s *Service) Update(ctx context.Context, chatID string, patch Parent) (Parent, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return Parent{}, ErrNotFound
	}
	if patch.Age < 0 {
		return Parent{}, ErrInvalidInput
	}
	name := strings.TrimSpace(patch.Name)

	updated, err := s.repo.Update(ctx, chatID, func(cur *Parent) error {
		cur.Age = patch.Age
		cur.Name = name
		cur.Sex = patch.Sex
		cur.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Parent{}, apperr.Storage(err)
	}
	return updated, nil
}

// Delete borra el adoptante y devuelve un mensaje de confirmación (no la entidad).
// Es idempotente.
func (s *Service) Delete(ctx context.Context, chatID string) (string, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID != "" {
		if err := s.repo.Delete(ctx, chatID); err != nil {
			return "", apperr.Storage(err)
		}
	}
	return DeletedMessage, nil
}

func (s *Service) All(ctx context.Context) ([]Parent, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

// AddAnimal asigna el animal al adoptante y abre (o reabre) el período de prueba.
// Pisa cualquier asignación previa. Un animal inexistente es ErrNotFound.
func (s *Service) AddAnimal(ctx context.Context, chatID string, animalID int64) (Parent, error) {
	ctx, span := tracer.Start(ctx, "parents.AddAnimal", trace.WithAttributes(
		attribute.String("parent.chat_id", chatID),
		attribute.Int64("animal.id", animalID),
	))
	defer span.End()

	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return Parent{}, spanErr(span, ErrNotFound)
	}
	if animalID <= 0 {
		return Parent{}, spanErr(span, ErrNotFound)
	}

	p, err := s.repo.Update(ctx, chatID, func(cur *Parent) error {
		now := s.now()
		id := animalID
		cur.AnimalID = &id
		cur.Probation = ProbationActive
		cur.ProbationStartedAt = &now
		cur.UpdatedAt = now
		return nil
	})
	if err != nil {
		return Parent{}, spanErr(span, apperr.Storage(err))
	}
	return p, nil
}

// AddDateOfReport registra la próxima fecha de reporte (se guarda como día calendario).
// La fecha solo avanza: una fecha anterior a la guardada es ErrInvalidInput,
// la misma fecha se acepta.
func (s *Service) AddDateOfReport(ctx context.Context, chatID string, date time.Time) (Parent, error) {
	ctx, span := tracer.Start(ctx, "parents.AddDateOfReport", trace.WithAttributes(
		attribute.String("parent.chat_id", chatID),
	))
	defer span.End()

	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return Parent{}, spanErr(span, ErrNotFound)
	}
	if date.IsZero() {
		return Parent{}, spanErr(span, ErrInvalidInput)
	}
	day := Day(date)
	span.SetAttributes(attribute.String("report.date", day.Format(time.DateOnly)))

	p, err := s.repo.Update(ctx, chatID, func(cur *Parent) error {
		if !cur.OnProbation() {
			return ErrBadState
		}
		if cur.ReportDate != nil && day.Before(*cur.ReportDate) {
			return ErrInvalidInput
		}
		cur.ReportDate = &day
		cur.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Parent{}, spanErr(span, apperr.Storage(err))
	}
	return p, nil
}

// CompleteProbation registra que el adoptante pasó el período de prueba
// y le manda la felicitación. El animal queda adoptado.
func (s *Service) CompleteProbation(ctx context.Context, chatID string) (Parent, error) {
	ctx, span := tracer.Start(ctx, "parents.CompleteProbation", trace.WithAttributes(
		attribute.String("parent.chat_id", chatID),
	))
	defer span.End()

	p, err := s.conclude(ctx, chatID, func(cur *Parent) {
		cur.Probation = ProbationGraduated
		cur.ReportDate = nil
	})
	if err != nil {
		return Parent{}, spanErr(span, err)
	}

	s.notify(ctx, span, p.UserName, MessageCongratulations)
	return p, nil
}

// FailProbation registra que el adoptante no pasó el período de prueba,
// libera el animal (sigue en su refugio) y le avisa.
func (s *Service) FailProbation(ctx context.Context, chatID string) (Parent, error) {
	ctx, span := tracer.Start(ctx, "parents.FailProbation", trace.WithAttributes(
		attribute.String("parent.chat_id", chatID),
	))
	defer span.End()

	p, err := s.conclude(ctx, chatID, func(cur *Parent) {
		cur.Probation = ProbationFailed
		cur.AnimalID = nil
		cur.ReportDate = nil
	})
	if err != nil {
		return Parent{}, spanErr(span, err)
	}

	s.notify(ctx, span, p.UserName, MessageAdoptionFailed)
	return p, nil
}

func (s *Service) conclude(ctx context.Context, chatID string, apply func(*Parent)) (Parent, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return Parent{}, ErrNotFound
	}
	p, err := s.repo.Update(ctx, chatID, func(cur *Parent) error {
		if !cur.OnProbation() {
			return ErrBadState
		}
		apply(cur)
		cur.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Parent{}, apperr.Storage(err)
	}
	return p, nil
}

// SendMessageToParent manda un texto libre al adoptante. No modifica estado.
func (s *Service) SendMessageToParent(ctx context.Context, userName, text string) error {
	userName = normalizeUserName(userName)
	text = strings.TrimSpace(text)
	if userName == "" || text == "" {
		return ErrInvalidInput
	}
	s.notifier.Notify(ctx, userName, text)
	return nil
}

// SendCongratulatoryMessage solo notifica; para registrar el resultado usar CompleteProbation.
func (s *Service) SendCongratulatoryMessage(ctx context.Context, userName string) error {
	return s.SendMessageToParent(ctx, userName, MessageCongratulations)
}

// SendMessageAdoptionFailed solo notifica; para registrar el resultado usar FailProbation.
func (s *Service) SendMessageAdoptionFailed(ctx context.Context, userName string) error {
	return s.SendMessageToParent(ctx, userName, MessageAdoptionFailed)
}

// DueReports lista los adoptantes cuyo próximo reporte vence ese día.
func (s *Service) DueReports(ctx context.Context, day time.Time) ([]Parent, error) {
	if day.IsZero() {
		return nil, ErrInvalidInput
	}
	items, err := s.repo.ListByReportDate(ctx, Day(day))
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

// RemindDueReports manda el recordatorio a cada adoptante con reporte ese día.
// Devuelve cuántos recordatorios se despacharon (los que no tienen user name se saltean).
func (s *Service) RemindDueReports(ctx context.Context, day time.Time) (int, error) {
	ctx, span := tracer.Start(ctx, "parents.RemindDueReports")
	defer span.End()

	due, err := s.DueReports(ctx, day)
	if err != nil {
		return 0, spanErr(span, err)
	}

	sent := 0
	for _, p := range due {
		if p.UserName == "" {
			continue
		}
		s.notifier.Notify(ctx, p.UserName, MessageReportReminder)
		sent++
	}
	span.SetAttributes(attribute.Int("reminders.due", len(due)), attribute.Int("reminders.sent", sent))
	return sent, nil
}

func (s *Service) notify(ctx context.Context, span trace.Span, userName, text string) {
	if userName == "" {
		span.AddEvent("notification skipped: parent has no user name")
		return
	}
	s.notifier.Notify(ctx, userName, text)
}

// Day trunca a día calendario (UTC) conservando la fecha local del valor recibido.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeUserName(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "@")
}

func spanErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
