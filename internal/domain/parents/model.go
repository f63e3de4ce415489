package parents

import "time"

// ProbationStatus es el estado del período de prueba del adoptante.
// @Enum unassigned, on_probation, graduated, failed
type ProbationStatus string

const (
	ProbationUnassigned ProbationStatus = "unassigned"
	ProbationActive     ProbationStatus = "on_probation"
	ProbationGraduated  ProbationStatus = "graduated"
	ProbationFailed     ProbationStatus = "failed"
)

// Parent es un adoptante. ChatID es el alias de chat que manda el cliente (no lo genera el server).
type Parent struct {
	ChatID   string
	UserName string // único; vacío hasta que el adoptante se registra en el bot

	Name string
	Age  int
	Sex  bool

	// Estado de adopción: solo lo tocan AddAnimal / AddDateOfReport / Complete / Fail.
	AnimalID           *int64
	ReportDate         *time.Time // próxima fecha de reporte (solo en período de prueba)
	Probation          ProbationStatus
	ProbationStartedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OnProbation indica si el adoptante tiene un animal asignado y el período sigue abierto.
func (p Parent) OnProbation() bool {
	return p.Probation == ProbationActive
}
