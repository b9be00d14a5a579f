package imports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/imports"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/punch"
)

type ImportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	punchRepo    punch.PunchRepository
}

func NewImportService(
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
) imports.ImportService {
	return &ImportServiceImpl{
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
	}
}

// ImportPunches implements imports.ImportService. Rows keep the timestamp
// text exactly as the device export carries it; nothing is parsed or
// reformatted on the way in.
func (s *ImportServiceImpl) ImportPunches(ctx context.Context, r io.Reader) (imports.ImportResult, error) {
	records, err := readCSV(r)
	if err != nil {
		return imports.ImportResult{}, err
	}
	// First line is the device export header.
	if len(records) > 0 {
		records = records[1:]
	}

	batchID := uuid.New().String()
	result := imports.ImportResult{BatchID: batchID}

	punches := make([]punch.Punch, 0, len(records))
	for _, rec := range records {
		result.Rows++
		if len(rec) < 3 {
			result.Skipped++
			continue
		}
		pin := strings.TrimSpace(rec[1])
		timestamp := strings.TrimSpace(rec[2])
		if pin == "" || timestamp == "" {
			result.Skipped++
			continue
		}
		punches = append(punches, punch.Punch{
			DeviceIP:  strings.TrimSpace(rec[0]),
			PIN:       pin,
			Timestamp: timestamp,
			BatchID:   &batchID,
		})
	}

	if len(punches) == 0 {
		return imports.ImportResult{}, imports.ErrEmptyFile
	}

	inserted, err := s.punchRepo.CreateBatch(ctx, punches)
	if err != nil {
		return imports.ImportResult{}, fmt.Errorf("failed to store punches: %w", err)
	}

	result.Imported = inserted
	return result, nil
}

// ImportEmployees implements imports.ImportService. The file is "pin,name"
// with an optional header; existing PINs are never overwritten.
func (s *ImportServiceImpl) ImportEmployees(ctx context.Context, r io.Reader) (imports.ImportResult, error) {
	records, err := readCSV(r)
	if err != nil {
		return imports.ImportResult{}, err
	}
	if len(records) > 0 && looksLikeHeader(records[0]) {
		records = records[1:]
	}

	result := imports.ImportResult{BatchID: uuid.New().String()}

	employees := make([]employee.Employee, 0, len(records))
	for _, rec := range records {
		result.Rows++
		if len(rec) < 1 {
			result.Skipped++
			continue
		}
		pin := strings.TrimSpace(rec[0])
		if pin == "" {
			result.Skipped++
			continue
		}
		name := ""
		if len(rec) > 1 {
			name = strings.TrimSpace(rec[1])
		}
		employees = append(employees, employee.Employee{PIN: pin, Name: name})
	}

	if len(employees) == 0 {
		return imports.ImportResult{}, imports.ErrEmptyFile
	}

	inserted, err := s.employeeRepo.CreateBatch(ctx, employees)
	if err != nil {
		return imports.ImportResult{}, fmt.Errorf("failed to store employees: %w", err)
	}

	result.Imported = inserted
	result.Skipped += len(employees) - inserted
	return result, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", imports.ErrUnreadableCSV, err)
	}
	if len(records) == 0 {
		return nil, imports.ErrEmptyFile
	}
	return records, nil
}

func looksLikeHeader(rec []string) bool {
	return len(rec) > 0 && strings.Contains(strings.ToLower(rec[0]), "pin")
}
