package service

import (
	"context"
	"errors"

	"github.com/mluksch/personboard/internal/dto"
	"github.com/mluksch/personboard/internal/model"
	"github.com/mluksch/personboard/internal/repository"
	"github.com/mluksch/personboard/pkg/validation"
)

const (
	// DefaultListLimit is the maximum number of persons returned when no limit is requested.
	DefaultListLimit = 10
)

var (
	// ErrPersonAlreadyExists is returned when a person with the same name already exists.
	ErrPersonAlreadyExists = errors.New("person with the provided name already exists")
	// ErrPersonNotFound is returned when no person with the provided name exists.
	ErrPersonNotFound = errors.New("person with the provided name does not exist")
	// ErrInvalidOrderBy is returned when an unknown ordering key is provided.
	ErrInvalidOrderBy = errors.New("persons can only be ordered by name or age")
)

// OrderBy is an ordering key for person listings.
type OrderBy string

const (
	// OrderByName orders persons alphabetically by name.
	OrderByName OrderBy = "name"
	// OrderByAge orders persons by ascending age.
	OrderByAge OrderBy = "age"
)

// PersonService defines the interface for person-related operations.
type PersonService interface {
	// CreatePerson creates a new person.
	CreatePerson(context.Context, *dto.CreatePersonDTO) (*dto.PersonDTO, error)

	// GetPersonByName retrieves a person with their posts by name.
	GetPersonByName(ctx context.Context, name string) (*dto.PersonDTO, error)

	// ListPersons lists persons filtered, ordered and limited.
	ListPersons(ctx context.Context, filter string, limit int, orderBy OrderBy) ([]*dto.PersonDTO, error)
}

// PersonServiceImpl implements the PersonService interface.
type PersonServiceImpl struct {
	personRepository repository.PersonRepository
}

// NewPersonService creates a new PersonServiceImpl instance with the provided personRepository.
func NewPersonService(personRepository repository.PersonRepository) *PersonServiceImpl {
	return &PersonServiceImpl{
		personRepository: personRepository,
	}
}

func (ps *PersonServiceImpl) CreatePerson(ctx context.Context, createPerson *dto.CreatePersonDTO) (*dto.PersonDTO, error) {
	if err := validation.ValidatePersonName(createPerson.Name); err != nil {
		return nil, err
	}

	person, err := ps.personRepository.GetPersonByName(ctx, createPerson.Name)
	if err != nil {
		return nil, err
	}
	if person != nil {
		return nil, ErrPersonAlreadyExists
	}

	newPerson, err := ps.personRepository.AddPerson(ctx, &model.Person{
		Name: createPerson.Name,
		Age:  createPerson.Age,
	})
	if err != nil {
		return nil, err
	}

	return newPersonDTO(newPerson), nil
}

func (ps *PersonServiceImpl) GetPersonByName(ctx context.Context, name string) (*dto.PersonDTO, error) {
	if err := validation.ValidatePersonName(name); err != nil {
		return nil, err
	}

	person, err := ps.personRepository.GetPersonByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	return newPersonDTO(person), nil
}

func (ps *PersonServiceImpl) ListPersons(ctx context.Context, filter string, limit int, orderBy OrderBy) ([]*dto.PersonDTO, error) {
	if orderBy == "" {
		orderBy = OrderByName
	}
	if orderBy != OrderByName && orderBy != OrderByAge {
		return nil, ErrInvalidOrderBy
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	persons, err := ps.personRepository.ListPersons(ctx, filter, limit, string(orderBy))
	if err != nil {
		return nil, err
	}

	personDTOs := make([]*dto.PersonDTO, 0, len(persons))
	for _, person := range persons {
		personDTOs = append(personDTOs, newPersonDTO(person))
	}

	return personDTOs, nil
}

func newPersonDTO(person *model.Person) *dto.PersonDTO {
	personDTO := &dto.PersonDTO{
		ID:        int64(person.ID),
		Name:      person.Name,
		Age:       person.Age,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}

	for _, post := range person.Posts {
		personDTO.Posts = append(personDTO.Posts, *newPostDTO(&post))
	}

	return personDTO
}
