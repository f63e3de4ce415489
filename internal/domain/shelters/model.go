package shelters

import (
	"strings"
	"time"

	"pet-shelter/internal/domain/animals"
)

// PetType clasifica qué especies aloja el refugio.
// @Enum CAT, DOG
type PetType string

const (
	PetTypeCat PetType = "CAT"
	PetTypeDog PetType = "DOG"
)

func ParsePetType(s string) (PetType, bool) {
	switch PetType(strings.ToUpper(strings.TrimSpace(s))) {
	case PetTypeCat:
		return PetTypeCat, true
	case PetTypeDog:
		return PetTypeDog, true
	default:
		return "", false
	}
}

// Accepts indica si un animal de esa especie puede referenciar a un refugio de este tipo.
func (p PetType) Accepts(kind animals.Kind) bool {
	switch p {
	case PetTypeCat:
		return kind == animals.KindCat
	case PetTypeDog:
		return kind == animals.KindDog
	default:
		return false
	}
}

type Shelter struct {
	ID int64

	Name        string
	Address     string
	Info        string // texto libre: horarios, contacto, etc.
	Instruction string // instrucciones de adopción
	PetType     PetType

	CreatedAt time.Time
	UpdatedAt time.Time
}
