package memory

import (
	"sync"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/parents"
	"pet-shelter/internal/domain/shelters"
	"pet-shelter/internal/domain/volunteers"
)

// Store guarda las cuatro entidades detrás de un único lock.
// Las reglas entre entidades (especie del refugio, animal asignado, refugio con animales)
// se chequean y se escriben dentro de la misma sección crítica.
type Store struct {
	mu sync.RWMutex

	animals    map[int64]animals.Animal
	nextAnimal int64

	shelters    map[int64]shelters.Shelter
	nextShelter int64

	parents     map[string]parents.Parent
	parentOrder []string

	volunteers     map[string]volunteers.Volunteer
	volunteerOrder []string // alias en orden de alta
}

func NewStore() *Store {
	return &Store{
		animals:    make(map[int64]animals.Animal),
		shelters:   make(map[int64]shelters.Shelter),
		parents:    make(map[string]parents.Parent),
		volunteers: make(map[string]volunteers.Volunteer),
	}
}

func (s *Store) Animals() animals.Repository { return &animalRepo{s: s} }

func (s *Store) Shelters() shelters.Repository { return &shelterRepo{s: s} }

// Parents devuelve el tipo concreto: además de parents.Repository
// lo usa el gateway de Telegram (ChatIDFor).
func (s *Store) Parents() *ParentRepo { return &ParentRepo{s: s} }

func (s *Store) Volunteers() volunteers.Repository { return &volunteerRepo{s: s} }

// acceptsAnimal: el refugio existe y aloja esa especie. Requiere el lock tomado.
func (s *Store) acceptsAnimal(shelterID int64, kind animals.Kind) bool {
	sh, ok := s.shelters[shelterID]
	return ok && sh.PetType.Accepts(kind)
}

// animalAssigned requiere el lock tomado.
func (s *Store) animalAssigned(animalID int64) bool {
	for _, p := range s.parents {
		if p.AnimalID != nil && *p.AnimalID == animalID {
			return true
		}
	}
	return false
}

// kindsIn: especies con animales en el refugio. Requiere el lock tomado.
func (s *Store) kindsIn(shelterID int64) []animals.Kind {
	seen := make(map[animals.Kind]bool, 2)
	out := make([]animals.Kind, 0, 2)
	for _, a := range s.animals {
		if a.ShelterID != shelterID || seen[a.Kind] {
			continue
		}
		seen[a.Kind] = true
		out = append(out, a.Kind)
	}
	return out
}
