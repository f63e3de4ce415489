package animals

import (
	"strings"
	"time"
)

// Kind es la variante concreta del animal. Se fija al crearlo y nunca cambia.
// @Enum cat, dog
type Kind string

const (
	KindCat Kind = "cat"
	KindDog Kind = "dog"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCat:
		return KindCat, true
	case KindDog:
		return KindDog, true
	default:
		return "", false
	}
}

// Animal es un animal del refugio a la espera de adopción.
type Animal struct {
	ID   int64 // asignado por el storage
	Kind Kind  // cat, dog

	Name string
	Age  int
	Sex  bool

	ShelterID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
