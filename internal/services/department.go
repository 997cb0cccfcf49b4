package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"officials-tracker/internal/entities"
	"officials-tracker/internal/repositories"
)

type DepartmentService struct {
	departmentRepository    repositories.DepartmentRepositoryInterface
	subdepartmentRepository repositories.SubdepartmentRepositoryInterface
	logger                  *zap.Logger
}

func NewDepartmentService(departmentRepository repositories.DepartmentRepositoryInterface,
	subdepartmentRepository repositories.SubdepartmentRepositoryInterface,
	logger *zap.Logger,
) *DepartmentService {
	return &DepartmentService{
		departmentRepository:    departmentRepository,
		subdepartmentRepository: subdepartmentRepository,
		logger:                  logger,
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context) ([]entities.Department, error) {
	return s.departmentRepository.LoadAll(ctx)
}

func (s *DepartmentService) GetSubdepartments(ctx context.Context) ([]entities.Subdepartment, error) {
	return s.subdepartmentRepository.LoadAll(ctx)
}

func (s *DepartmentService) GetOrCreateDepartment(ctx context.Context, name, level string) (*entities.Department, error) {
	return s.departmentRepository.GetOrCreate(ctx, name, level)
}

func (s *DepartmentService) GetOrCreateSubdepartment(ctx context.Context, name, departmentName string) (*entities.Subdepartment, error) {
	return s.subdepartmentRepository.GetOrCreate(ctx, name, departmentName)
}

// DeactivateDepartment выключает ведомство: is_active=false и отметка
// времени. Ссылающиеся на него должности не трогаются — целостность по
// имени хранилище не поддерживает.
func (s *DepartmentService) DeactivateDepartment(ctx context.Context, name string) error {
	dept, err := s.departmentRepository.GetByName(ctx, name)
	if err != nil {
		return err
	}
	dept.IsActive = false
	dept.DeactivatedAt = null.StringFrom(entities.NowTimestamp())

	if err := s.departmentRepository.Upsert(ctx, *dept); err != nil {
		s.logger.Error("Ошибка при деактивации ведомства", zap.String("name", name), zap.Error(err))
		return err
	}
	s.logger.Info("Ведомство деактивировано", zap.String("name", name))
	return nil
}

// ReactivateDepartment включает ведомство обратно и сбрасывает
// deactivated_at.
func (s *DepartmentService) ReactivateDepartment(ctx context.Context, name string) error {
	dept, err := s.departmentRepository.GetByName(ctx, name)
	if err != nil {
		return err
	}
	dept.IsActive = true
	dept.DeactivatedAt = null.String{}

	return s.departmentRepository.Upsert(ctx, *dept)
}

func (s *DepartmentService) DeactivateSubdepartment(ctx context.Context, name, departmentName string) error {
	subdept, err := s.subdepartmentRepository.GetByKey(ctx, name, departmentName)
	if err != nil {
		return err
	}
	subdept.IsActive = false
	subdept.DeactivatedAt = null.StringFrom(entities.NowTimestamp())

	return s.subdepartmentRepository.Upsert(ctx, *subdept)
}

func (s *DepartmentService) ReactivateSubdepartment(ctx context.Context, name, departmentName string) error {
	subdept, err := s.subdepartmentRepository.GetByKey(ctx, name, departmentName)
	if err != nil {
		return err
	}
	subdept.IsActive = true
	subdept.DeactivatedAt = null.String{}

	return s.subdepartmentRepository.Upsert(ctx, *subdept)
}
