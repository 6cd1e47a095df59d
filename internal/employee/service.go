package employee

import (
	"log/slog"
	"strings"
)

type RepositoryAPI interface {
	GetActive() ([]*Employee, error)
	GetByID(employeeID string) (*Employee, error)
	Create(e *Employee) error
	Deactivate(employeeID string) error
	ActiveAssets(employeeID string) ([]ActiveAsset, error)
	ActiveExists(employeeID string) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetActiveEmployees() ([]EmployeeResponse, error) {
	employees, err := s.repo.GetActive()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, EmployeeResponse{
			EmployeeID: e.EmployeeID,
			Name:       e.Name,
			Email:      e.Email,
			Location:   e.Location,
			Status:     e.Status,
		})
	}
	return responses, nil
}

func (s *Service) AddEmployee(dto AddEmployeeDTO) (*AddEmployeeResponse, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err)
		return nil, err
	}

	e := NewEmployee(
		strings.TrimSpace(dto.EmployeeID),
		strings.TrimSpace(dto.Name),
		strings.TrimSpace(dto.Email),
		strings.TrimSpace(dto.Location),
	)

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create employee", "error", err, "employee_id", e.EmployeeID)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", e.EmployeeID)
	return &AddEmployeeResponse{
		Message:    "Employee added successfully",
		EmployeeID: e.EmployeeID,
	}, nil
}

// Deactivate marks an employee inactive. The repository refuses while the
// employee still holds active assignments.
func (s *Service) Deactivate(dto DeactivateDTO) (*DeactivateResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Deactivate(dto.EmployeeID); err != nil {
		s.logger.Error("failed to deactivate employee", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("employee deactivated", "employee_id", dto.EmployeeID)
	return &DeactivateResponse{
		Message:    "Employee deactivated",
		EmployeeID: dto.EmployeeID,
		Status:     StatusInactive,
	}, nil
}

func (s *Service) ActiveAssets(employeeID string) (*ActiveAssetsResponse, error) {
	if _, err := s.repo.GetByID(employeeID); err != nil {
		return nil, err
	}

	assets, err := s.repo.ActiveAssets(employeeID)
	if err != nil {
		s.logger.Error("failed to list employee assets", "error", err, "employee_id", employeeID)
		return nil, err
	}

	return &ActiveAssetsResponse{
		EmployeeID:   employeeID,
		ActiveAssets: len(assets),
		Assets:       assets,
	}, nil
}

// ActiveExists satisfies the lifecycle engine's employee directory.
func (s *Service) ActiveExists(employeeID string) (bool, error) {
	return s.repo.ActiveExists(employeeID)
}
