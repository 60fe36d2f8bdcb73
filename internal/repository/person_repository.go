package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mluksch/personboard/internal/model"
	"gorm.io/gorm"
)

// PersonRepository is an interface that defines the methods required for person data management.
type PersonRepository interface {
	// AddPerson adds a new person to the database.
	AddPerson(ctx context.Context, person *model.Person) (addedPerson *model.Person, err error)

	// GetPersonByName retrieves a person from the database by their name,
	// including the posts they authored.
	GetPersonByName(ctx context.Context, name string) (person *model.Person, err error)

	// ListPersons retrieves persons matching an optional case-insensitive name
	// substring filter, ordered by the given column and capped at limit rows.
	ListPersons(ctx context.Context, filter string, limit int, orderBy string) (persons []*model.Person, err error)
}

// PersonRepositoryImpl implements the PersonRepository interface.
type PersonRepositoryImpl struct {
	db *gorm.DB
}

// NewPersonRepository creates a new PersonRepositoryImpl instance with the provided database.
func NewPersonRepository(db *gorm.DB) *PersonRepositoryImpl {
	return &PersonRepositoryImpl{
		db: db,
	}
}

func (pr *PersonRepositoryImpl) AddPerson(ctx context.Context, person *model.Person) (*model.Person, error) {
	if err := pr.db.WithContext(ctx).Create(person).Error; err != nil {
		return nil, fmt.Errorf("failed to add person: %w", err)
	}

	return person, nil
}

func (pr *PersonRepositoryImpl) GetPersonByName(ctx context.Context, name string) (*model.Person, error) {
	var person model.Person
	err := pr.db.WithContext(ctx).
		Preload("Posts").
		Where("name = ?", name).
		First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}

	return &person, nil
}

func (pr *PersonRepositoryImpl) ListPersons(ctx context.Context, filter string, limit int, orderBy string) ([]*model.Person, error) {
	dbQuery := pr.db.WithContext(ctx).Model(&model.Person{})

	if filter != "" {
		dbQuery = dbQuery.Where("lower(name) LIKE ?", "%"+strings.ToLower(filter)+"%")
	}
	if orderBy != "" {
		dbQuery = dbQuery.Order(orderBy)
	}
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	persons := make([]*model.Person, 0)
	if err := dbQuery.Find(&persons).Error; err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	return persons, nil
}
