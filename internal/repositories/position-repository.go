package repositories

import (
	"context"

	"officials-tracker/internal/entities"
	"officials-tracker/pkg/database/jsonfile"
	apperrors "officials-tracker/pkg/errors"
)

const (
	positionsResource = "positions"
	positionsDocPath  = "positions/positions.json"
	positionIDPrefix  = "pos"
)

type positionsDoc struct {
	Positions []entities.Position `json:"positions"`
}

type PositionRepositoryInterface interface {
	LoadAll(ctx context.Context) ([]entities.Position, error)
	SaveAll(ctx context.Context, positions []entities.Position) error
	Add(ctx context.Context, position entities.Position) error
	GetByID(ctx context.Context, id string) (*entities.Position, error)
	Update(ctx context.Context, position entities.Position) error
	NextID(ctx context.Context) (string, error)
}

type PositionRepository struct {
	storage *jsonfile.Store
}

func NewPositionRepository(storage *jsonfile.Store) PositionRepositoryInterface {
	return &PositionRepository{
		storage: storage,
	}
}

func (r *PositionRepository) LoadAll(ctx context.Context) ([]entities.Position, error) {
	var doc positionsDoc
	found, err := r.storage.ReadDocument(ctx, positionsResource, positionsDocPath, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entities.Position{}, nil
	}
	return doc.Positions, nil
}

func (r *PositionRepository) SaveAll(ctx context.Context, positions []entities.Position) error {
	return r.storage.WriteDocument(ctx, positionsResource, positionsDocPath, positionsDoc{Positions: positions})
}

func (r *PositionRepository) Add(ctx context.Context, position entities.Position) error {
	positions, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	positions = append(positions, position)
	return r.SaveAll(ctx, positions)
}

func (r *PositionRepository) GetByID(ctx context.Context, id string) (*entities.Position, error) {
	positions, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range positions {
		if positions[i].ID == id {
			return &positions[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Update заменяет должность с тем же id. Если её нет — ErrNotFound,
// вставка на промахе не выполняется.
func (r *PositionRepository) Update(ctx context.Context, position entities.Position) error {
	positions, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range positions {
		if positions[i].ID == position.ID {
			positions[i] = position
			return r.SaveAll(ctx, positions)
		}
	}
	return apperrors.ErrNotFound
}

func (r *PositionRepository) NextID(ctx context.Context) (string, error) {
	positions, err := r.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(positions))
	for _, p := range positions {
		ids = append(ids, p.ID)
	}
	return nextID(positionIDPrefix, ids), nil
}
