package repositories

import (
	"context"

	"officials-tracker/internal/entities"
	"officials-tracker/pkg/database/jsonfile"
	apperrors "officials-tracker/pkg/errors"
	"officials-tracker/pkg/utils"
)

const (
	departmentsResource = "departments"
	departmentsDocPath  = "departments.json"
	departmentIDPrefix  = "dept"
)

type departmentsDoc struct {
	Departments []entities.Department `json:"departments"`
}

type DepartmentRepositoryInterface interface {
	LoadAll(ctx context.Context) ([]entities.Department, error)
	SaveAll(ctx context.Context, departments []entities.Department) error
	GetByName(ctx context.Context, name string) (*entities.Department, error)
	Upsert(ctx context.Context, department entities.Department) error
	GetOrCreate(ctx context.Context, name, level string) (*entities.Department, error)
	NextID(ctx context.Context) (string, error)
}

type DepartmentRepository struct {
	storage *jsonfile.Store
}

func NewDepartmentRepository(storage *jsonfile.Store) DepartmentRepositoryInterface {
	return &DepartmentRepository{
		storage: storage,
	}
}

func (r *DepartmentRepository) LoadAll(ctx context.Context) ([]entities.Department, error) {
	var doc departmentsDoc
	found, err := r.storage.ReadDocument(ctx, departmentsResource, departmentsDocPath, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entities.Department{}, nil
	}
	return doc.Departments, nil
}

func (r *DepartmentRepository) SaveAll(ctx context.Context, departments []entities.Department) error {
	return r.storage.WriteDocument(ctx, departmentsResource, departmentsDocPath, departmentsDoc{Departments: departments})
}

func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*entities.Department, error) {
	departments, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if utils.SameName(departments[i].Name, name) {
			return &departments[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Upsert заменяет ведомство с тем же названием, а если такого нет —
// добавляет запись в конец.
func (r *DepartmentRepository) Upsert(ctx context.Context, department entities.Department) error {
	departments, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range departments {
		if utils.SameName(departments[i].Name, department.Name) {
			departments[i] = department
			return r.SaveAll(ctx, departments)
		}
	}
	departments = append(departments, department)
	return r.SaveAll(ctx, departments)
}

func (r *DepartmentRepository) GetOrCreate(ctx context.Context, name, level string) (*entities.Department, error) {
	dept, err := r.GetByName(ctx, name)
	if err == nil {
		return dept, nil
	}
	if err != apperrors.ErrNotFound {
		return nil, err
	}

	id, err := r.NextID(ctx)
	if err != nil {
		return nil, err
	}
	created := entities.NewDepartment(id, utils.NormalizeName(name), level)
	if err := r.Upsert(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *DepartmentRepository) NextID(ctx context.Context) (string, error) {
	departments, err := r.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(departments))
	for _, d := range departments {
		ids = append(ids, d.ID)
	}
	return nextID(departmentIDPrefix, ids), nil
}
