package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/mluksch/personboard/internal/model"
)

// MockPersonRepository is a mock implementation of PersonRepository for testing purposes.
type MockPersonRepository struct {
	Persons        map[uint]*model.Person // Map to store persons by ID
	LastInsertedID uint                   // To simulate auto-increment behavior
}

// NewMockPersonRepository creates a new instance of MockPersonRepository.
func NewMockPersonRepository() *MockPersonRepository {
	return &MockPersonRepository{
		Persons: make(map[uint]*model.Person),
	}
}

// AddPerson is a mock implementation of AddPerson method.
func (m *MockPersonRepository) AddPerson(ctx context.Context, person *model.Person) (*model.Person, error) {
	m.LastInsertedID++
	person.ID = m.LastInsertedID
	m.Persons[person.ID] = person
	return person, nil
}

// GetPersonByName is a mock implementation of GetPersonByName method.
func (m *MockPersonRepository) GetPersonByName(ctx context.Context, name string) (*model.Person, error) {
	for _, person := range m.Persons {
		if person.Name == name {
			return person, nil
		}
	}

	return nil, nil
}

// ListPersons is a mock implementation of ListPersons method.
// It mirrors the filter, order and limit semantics of the real repository.
func (m *MockPersonRepository) ListPersons(ctx context.Context, filter string, limit int, orderBy string) ([]*model.Person, error) {
	persons := make([]*model.Person, 0, len(m.Persons))
	for _, person := range m.Persons {
		if filter != "" && !strings.Contains(strings.ToLower(person.Name), strings.ToLower(filter)) {
			continue
		}
		persons = append(persons, person)
	}

	sort.Slice(persons, func(i, j int) bool {
		if orderBy == "age" {
			var ai, aj int
			if persons[i].Age != nil {
				ai = *persons[i].Age
			}
			if persons[j].Age != nil {
				aj = *persons[j].Age
			}
			return ai < aj
		}
		return persons[i].Name < persons[j].Name
	})

	if limit > 0 && len(persons) > limit {
		persons = persons[:limit]
	}

	return persons, nil
}
