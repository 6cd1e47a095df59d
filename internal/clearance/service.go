package clearance

import (
	"log/slog"

	"github.com/frahmantamala/asset-tracker/internal/auth"
)

// RepositoryAPI is the data access the clearance checks need. Deactivation
// is conditional in the database so a concurrent assignment cannot slip in
// between the check and the write.
type RepositoryAPI interface {
	EmployeeExists(employeeID string) (bool, error)
	ActiveAssignments(employeeID string) ([]string, error)
	MissingAssetsHeld(employeeID string) ([]string, error)
	DeactivateIfClear(employeeID string) error
}

type Service struct {
	repo    RepositoryAPI
	secrets auth.SecretVerifier
	logger  *slog.Logger
}

func NewService(repo RepositoryAPI, secrets auth.SecretVerifier, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		secrets: secrets,
		logger:  logger,
	}
}

// Check reports whether an employee is clear to exit. Active assignments
// block first; assets that went missing while the employee held them block
// next. The check never changes state.
func (s *Service) Check(employeeID string) (*Result, error) {
	exists, err := s.repo.EmployeeExists(employeeID)
	if err != nil {
		s.logger.Error("failed to look up employee", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	assigned, err := s.repo.ActiveAssignments(employeeID)
	if err != nil {
		s.logger.Error("failed to check active assignments", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if len(assigned) > 0 {
		return &Result{
			EmployeeID: employeeID,
			Clearance:  false,
			Reason:     ReasonAssetsAssigned,
			Assets:     assigned,
			Message:    "Employee must return all assigned assets",
		}, nil
	}

	missing, err := s.repo.MissingAssetsHeld(employeeID)
	if err != nil {
		s.logger.Error("failed to check missing assets", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if len(missing) > 0 {
		return &Result{
			EmployeeID: employeeID,
			Clearance:  false,
			Reason:     ReasonMissingAssets,
			Assets:     missing,
			Message:    "Employee is linked to assets reported missing",
		}, nil
	}

	return &Result{
		EmployeeID: employeeID,
		Clearance:  true,
		Message:    "Employee cleared for exit",
	}, nil
}

// Approve finalizes an exit: it requires the admin secret and deactivates
// the employee, refusing if active assignments remain at commit time.
func (s *Service) Approve(dto ApproveDTO) (*ApproveResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if !s.secrets.Verify(dto.Secret) {
		s.logger.Warn("clearance approval rejected: invalid admin secret", "employee_id", dto.EmployeeID)
		return nil, ErrInvalidAdminSecret
	}

	exists, err := s.repo.EmployeeExists(dto.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	if err := s.repo.DeactivateIfClear(dto.EmployeeID); err != nil {
		s.logger.Error("clearance approval failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("exit clearance approved", "employee_id", dto.EmployeeID)
	return &ApproveResponse{
		Message:    "Exit clearance approved",
		EmployeeID: dto.EmployeeID,
		Status:     "inactive",
	}, nil
}
