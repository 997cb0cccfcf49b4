package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"officials-tracker/internal/entities"
	"officials-tracker/internal/repositories"
	"officials-tracker/pkg/utils"
)

// Колонки выгрузки реестра чиновников, в фиксированном порядке.
const (
	colDepartment = iota
	colSubdepartment
	colPositionTitle
	colPersonName
	colStartDate
	colEndDate
)

// В выгрузке две строки шапки, данные начинаются с третьей.
const headerRows = 2

type ImportSummary struct {
	Departments    int
	Subdepartments int
	Positions      int
	Persons        int
}

// OfficialsImportService загружает реестр из CSV или Excel и формирует
// коллекции заново. Ведомство и подразделение в выгрузке проставлены
// только у первой строки блока и протягиваются вниз; пустое
// подразделение означает руководство уровня ведомства.
type OfficialsImportService struct {
	positionRepository      repositories.PositionRepositoryInterface
	personRepository        repositories.PersonRepositoryInterface
	departmentRepository    repositories.DepartmentRepositoryInterface
	subdepartmentRepository repositories.SubdepartmentRepositoryInterface
	logger                  *zap.Logger
}

func NewOfficialsImportService(
	positionRepository repositories.PositionRepositoryInterface,
	personRepository repositories.PersonRepositoryInterface,
	departmentRepository repositories.DepartmentRepositoryInterface,
	subdepartmentRepository repositories.SubdepartmentRepositoryInterface,
	logger *zap.Logger,
) *OfficialsImportService {
	return &OfficialsImportService{
		positionRepository:      positionRepository,
		personRepository:        personRepository,
		departmentRepository:    departmentRepository,
		subdepartmentRepository: subdepartmentRepository,
		logger:                  logger,
	}
}

func (s *OfficialsImportService) ImportCSV(ctx context.Context, path string) (*ImportSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения CSV: %w", err)
	}

	return s.importRows(ctx, rows)
}

func (s *OfficialsImportService) ImportExcel(ctx context.Context, path string) (*ImportSummary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("в файле нет листов")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %q: %w", sheets[0], err)
	}

	return s.importRows(ctx, rows)
}

func (s *OfficialsImportService) importRows(ctx context.Context, rows [][]string) (*ImportSummary, error) {
	type positionKey struct{ department, subdepartment, title string }

	positionIDs := make(map[positionKey]string)
	positions := make([]entities.Position, 0)
	personIdx := make(map[string]int)
	persons := make([]entities.Person, 0)

	var currentDepartment, currentSubdepartment string
	positionCounter, personCounter := 1, 1

	for i := headerRows; i < len(rows); i++ {
		row := rows[i]

		if v := utils.NormalizeName(cell(row, colDepartment)); v != "" {
			currentDepartment = v
		}
		if v := utils.NormalizeName(cell(row, colSubdepartment)); v != "" {
			currentSubdepartment = v
		} else {
			currentSubdepartment = entities.DefaultSubdepartment
		}

		title := utils.NormalizeName(cell(row, colPositionTitle))
		if title == "" {
			continue
		}

		key := positionKey{currentDepartment, currentSubdepartment, title}
		positionID, ok := positionIDs[key]
		if !ok {
			positionID = fmt.Sprintf("pos_%03d", positionCounter)
			positionCounter++
			positionIDs[key] = positionID
			positions = append(positions, entities.NewPosition(
				positionID, title, currentDepartment,
				null.StringFrom(currentSubdepartment), "",
			))
		}

		personName := utils.NormalizeName(cell(row, colPersonName))
		if personName == "" {
			continue
		}

		idx, ok := personIdx[personName]
		if !ok {
			person := entities.NewPerson(fmt.Sprintf("person_%03d", personCounter), personName)
			personCounter++
			persons = append(persons, person)
			idx = len(persons) - 1
			personIdx[personName] = idx
		}

		rawEnd := strings.TrimSpace(cell(row, colEndDate))
		persons[idx].Positions = append(persons[idx].Positions, entities.PositionAssignment{
			PositionID: positionID,
			StartDate:  utils.CleanDate(cell(row, colStartDate)),
			EndDate:    utils.CleanDate(rawEnd),
			// Текущей должность считается только при совсем пустой
			// дате окончания; "?" означает "ушёл, дата неизвестна".
			IsCurrent: rawEnd == "",
		})
	}

	departments, subdepartments := deriveOrgUnits(positions)

	if err := s.positionRepository.SaveAll(ctx, positions); err != nil {
		return nil, err
	}
	if err := s.personRepository.SaveAll(ctx, persons); err != nil {
		return nil, err
	}
	if err := s.departmentRepository.SaveAll(ctx, departments); err != nil {
		return nil, err
	}
	if err := s.subdepartmentRepository.SaveAll(ctx, subdepartments); err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		Departments:    len(departments),
		Subdepartments: len(subdepartments),
		Positions:      len(positions),
		Persons:        len(persons),
	}
	s.logger.Info("Импорт завершён",
		zap.Int("departments", summary.Departments),
		zap.Int("subdepartments", summary.Subdepartments),
		zap.Int("positions", summary.Positions),
		zap.Int("persons", summary.Persons),
	)
	return summary, nil
}

// deriveOrgUnits собирает ведомства и подразделения из импортированных
// должностей: отдельного справочника в выгрузке нет.
func deriveOrgUnits(positions []entities.Position) ([]entities.Department, []entities.Subdepartment) {
	deptSet := make(map[string]struct{})
	type subdeptKey struct{ name, department string }
	subdeptSet := make(map[subdeptKey]struct{})

	for _, p := range positions {
		deptSet[p.Department] = struct{}{}
		if p.Subdepartment.Valid {
			subdeptSet[subdeptKey{p.Subdepartment.String, p.Department}] = struct{}{}
		}
	}

	deptNames := make([]string, 0, len(deptSet))
	for name := range deptSet {
		deptNames = append(deptNames, name)
	}
	sort.Strings(deptNames)

	departments := make([]entities.Department, 0, len(deptNames))
	for i, name := range deptNames {
		departments = append(departments, entities.NewDepartment(fmt.Sprintf("dept_%03d", i+1), name, ""))
	}

	subdeptKeys := make([]subdeptKey, 0, len(subdeptSet))
	for key := range subdeptSet {
		subdeptKeys = append(subdeptKeys, key)
	}
	sort.Slice(subdeptKeys, func(i, j int) bool {
		if subdeptKeys[i].name != subdeptKeys[j].name {
			return subdeptKeys[i].name < subdeptKeys[j].name
		}
		return subdeptKeys[i].department < subdeptKeys[j].department
	})

	subdepartments := make([]entities.Subdepartment, 0, len(subdeptKeys))
	for i, key := range subdeptKeys {
		subdepartments = append(subdepartments, entities.NewSubdepartment(
			fmt.Sprintf("subdept_%03d", i+1), key.name, key.department,
		))
	}

	return departments, subdepartments
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
