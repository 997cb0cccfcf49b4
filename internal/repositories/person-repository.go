package repositories

import (
	"context"

	"officials-tracker/internal/entities"
	"officials-tracker/pkg/database/jsonfile"
	apperrors "officials-tracker/pkg/errors"
)

const (
	personsResource = "persons"
	personsDocPath  = "persons/persons.json"
	personIDPrefix  = "person"
)

type personsDoc struct {
	Persons []entities.Person `json:"persons"`
}

type PersonRepositoryInterface interface {
	LoadAll(ctx context.Context) ([]entities.Person, error)
	SaveAll(ctx context.Context, persons []entities.Person) error
	Add(ctx context.Context, person entities.Person) error
	GetByID(ctx context.Context, id string) (*entities.Person, error)
	Update(ctx context.Context, person entities.Person) error
	NextID(ctx context.Context) (string, error)
	GetByPosition(ctx context.Context, positionID string, currentOnly bool) ([]entities.Person, error)
}

type PersonRepository struct {
	storage *jsonfile.Store
}

func NewPersonRepository(storage *jsonfile.Store) PersonRepositoryInterface {
	return &PersonRepository{
		storage: storage,
	}
}

func (r *PersonRepository) LoadAll(ctx context.Context) ([]entities.Person, error) {
	var doc personsDoc
	found, err := r.storage.ReadDocument(ctx, personsResource, personsDocPath, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entities.Person{}, nil
	}
	// В документе поле positions всегда массив, даже пустой.
	for i := range doc.Persons {
		if doc.Persons[i].Positions == nil {
			doc.Persons[i].Positions = []entities.PositionAssignment{}
		}
	}
	return doc.Persons, nil
}

func (r *PersonRepository) SaveAll(ctx context.Context, persons []entities.Person) error {
	return r.storage.WriteDocument(ctx, personsResource, personsDocPath, personsDoc{Persons: persons})
}

func (r *PersonRepository) Add(ctx context.Context, person entities.Person) error {
	persons, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	persons = append(persons, person)
	return r.SaveAll(ctx, persons)
}

func (r *PersonRepository) GetByID(ctx context.Context, id string) (*entities.Person, error) {
	persons, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range persons {
		if persons[i].ID == id {
			return &persons[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *PersonRepository) Update(ctx context.Context, person entities.Person) error {
	persons, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range persons {
		if persons[i].ID == person.ID {
			persons[i] = person
			return r.SaveAll(ctx, persons)
		}
	}
	return apperrors.ErrNotFound
}

func (r *PersonRepository) NextID(ctx context.Context) (string, error) {
	persons, err := r.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(persons))
	for _, p := range persons {
		ids = append(ids, p.ID)
	}
	return nextID(personIDPrefix, ids), nil
}

// GetByPosition — все, кто занимал или занимает должность. При
// currentOnly учитываются только назначения с is_current=true.
// Персона попадает в результат один раз, даже если у неё несколько
// записей по этой должности.
func (r *PersonRepository) GetByPosition(ctx context.Context, positionID string, currentOnly bool) ([]entities.Person, error) {
	persons, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Person, 0)
	for _, person := range persons {
		for _, assignment := range person.Positions {
			if assignment.PositionID != positionID {
				continue
			}
			if !currentOnly || assignment.IsCurrent {
				result = append(result, person)
				break
			}
		}
	}
	return result, nil
}
