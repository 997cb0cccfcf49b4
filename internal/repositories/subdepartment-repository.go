package repositories

import (
	"context"

	"officials-tracker/internal/entities"
	"officials-tracker/pkg/database/jsonfile"
	apperrors "officials-tracker/pkg/errors"
	"officials-tracker/pkg/utils"
)

const (
	subdepartmentsResource = "subdepartments"
	subdepartmentsDocPath  = "subdepartments.json"
	subdepartmentIDPrefix  = "subdept"
)

type subdepartmentsDoc struct {
	Subdepartments []entities.Subdepartment `json:"subdepartments"`
}

type SubdepartmentRepositoryInterface interface {
	LoadAll(ctx context.Context) ([]entities.Subdepartment, error)
	SaveAll(ctx context.Context, subdepartments []entities.Subdepartment) error
	GetByKey(ctx context.Context, name, departmentName string) (*entities.Subdepartment, error)
	Upsert(ctx context.Context, subdepartment entities.Subdepartment) error
	GetOrCreate(ctx context.Context, name, departmentName string) (*entities.Subdepartment, error)
	NextID(ctx context.Context) (string, error)
}

type SubdepartmentRepository struct {
	storage *jsonfile.Store
}

func NewSubdepartmentRepository(storage *jsonfile.Store) SubdepartmentRepositoryInterface {
	return &SubdepartmentRepository{
		storage: storage,
	}
}

func (r *SubdepartmentRepository) LoadAll(ctx context.Context) ([]entities.Subdepartment, error) {
	var doc subdepartmentsDoc
	found, err := r.storage.ReadDocument(ctx, subdepartmentsResource, subdepartmentsDocPath, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entities.Subdepartment{}, nil
	}
	return doc.Subdepartments, nil
}

func (r *SubdepartmentRepository) SaveAll(ctx context.Context, subdepartments []entities.Subdepartment) error {
	return r.storage.WriteDocument(ctx, subdepartmentsResource, subdepartmentsDocPath, subdepartmentsDoc{Subdepartments: subdepartments})
}

// GetByKey ищет по составному ключу (название, название ведомства):
// id у подразделений ключом не является.
func (r *SubdepartmentRepository) GetByKey(ctx context.Context, name, departmentName string) (*entities.Subdepartment, error) {
	subdepartments, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range subdepartments {
		if utils.SameName(subdepartments[i].Name, name) &&
			utils.SameName(subdepartments[i].DepartmentName, departmentName) {
			return &subdepartments[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *SubdepartmentRepository) Upsert(ctx context.Context, subdepartment entities.Subdepartment) error {
	subdepartments, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range subdepartments {
		if utils.SameName(subdepartments[i].Name, subdepartment.Name) &&
			utils.SameName(subdepartments[i].DepartmentName, subdepartment.DepartmentName) {
			subdepartments[i] = subdepartment
			return r.SaveAll(ctx, subdepartments)
		}
	}
	subdepartments = append(subdepartments, subdepartment)
	return r.SaveAll(ctx, subdepartments)
}

func (r *SubdepartmentRepository) GetOrCreate(ctx context.Context, name, departmentName string) (*entities.Subdepartment, error) {
	subdept, err := r.GetByKey(ctx, name, departmentName)
	if err == nil {
		return subdept, nil
	}
	if err != apperrors.ErrNotFound {
		return nil, err
	}

	id, err := r.NextID(ctx)
	if err != nil {
		return nil, err
	}
	created := entities.NewSubdepartment(id, utils.NormalizeName(name), utils.NormalizeName(departmentName))
	if err := r.Upsert(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SubdepartmentRepository) NextID(ctx context.Context) (string, error) {
	subdepartments, err := r.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(subdepartments))
	for _, s := range subdepartments {
		ids = append(ids, s.ID)
	}
	return nextID(subdepartmentIDPrefix, ids), nil
}
