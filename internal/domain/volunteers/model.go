package volunteers

import "time"

// Volunteer es quien opera el refugio desde el bot. Se identifica por su alias de chat.
type Volunteer struct {
	ChatID string

	Name string
	Age  int
	Sex  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
