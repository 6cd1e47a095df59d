package asset

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/asset-tracker/internal/auth"
)

// Repository defines the data access methods for assets. Transition methods
// run as one transaction each: the status change is a conditional update
// guarded by the expected prior status, and zero affected rows aborts the
// whole transaction with the matching conflict error.
type Repository interface {
	GetByCode(code string) (*Asset, error)
	CodeExists(code string) (bool, error)
	List() ([]ListItem, error)
	Count() (int64, error)
	Detail(code string) (*Detail, error)

	Create(a *Asset) error
	UpdateDetails(code string, dto CreateAssetDTO, closeRepair bool) error

	Assign(code, employeeID string) error
	Return(code, remarks string) error
	SendToRepair(code, assigneeID, remarks string) error
	CompleteRepair(code string) error
	MarkMissing(code, remarks string) error
	Recover(code string) error
	Retire(code, remarks string) error

	ActiveRepairs() ([]RepairItem, error)
}

// EmployeeDirectory is the slice of the employee domain the lifecycle
// engine needs: whether an active employee exists.
type EmployeeDirectory interface {
	ActiveExists(employeeID string) (bool, error)
}

// CategoryDirectory resolves category names for asset-code prefixes.
type CategoryDirectory interface {
	NameByID(id int64) (name string, found bool, err error)
}

// Service is the asset lifecycle engine: it validates transition
// preconditions and delegates the atomic writes to the repository.
type Service struct {
	repo       Repository
	employees  EmployeeDirectory
	categories CategoryDirectory
	secrets    auth.SecretVerifier
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(repo Repository, employees EmployeeDirectory, categories CategoryDirectory, secrets auth.SecretVerifier, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		employees:  employees,
		categories: categories,
		secrets:    secrets,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the time source used for code generation.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) ListAssets() ([]ListItem, error) {
	items, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list assets", "error", err)
		return nil, err
	}
	return items, nil
}

func (s *Service) CountAssets() (int64, error) {
	count, err := s.repo.Count()
	if err != nil {
		s.logger.Error("failed to count assets", "error", err)
		return 0, err
	}
	return count, nil
}

func (s *Service) GetAsset(code string) (*Detail, error) {
	detail, err := s.repo.Detail(code)
	if err != nil {
		s.logger.Error("failed to get asset detail", "error", err, "asset_code", code)
		return nil, err
	}
	return detail, nil
}

// CreateOrUpdate inserts a new asset (generating a code when none is given)
// or updates the mutable fields of an existing one. Editing an asset that
// sits in repair pulls it back to stock and closes the repair record.
func (s *Service) CreateOrUpdate(dto CreateAssetDTO) (*CreateAssetResponse, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("asset validation failed", "error", err)
		return nil, err
	}

	if dto.AssetCode == "" {
		return s.createWithGeneratedCode(dto)
	}

	existing, err := s.repo.GetByCode(dto.AssetCode)
	if err != nil && err != ErrAssetNotFound {
		s.logger.Error("failed to look up asset", "error", err, "asset_code", dto.AssetCode)
		return nil, err
	}

	if existing == nil {
		a := newFromDTO(dto, s.now())
		if err := s.repo.Create(a); err != nil {
			s.logger.Error("failed to create asset", "error", err, "asset_code", dto.AssetCode)
			return nil, err
		}
		s.logger.Info("asset created", "asset_code", a.AssetCode, "category_id", a.CategoryID)
		return &CreateAssetResponse{Message: "Asset added successfully", AssetCode: a.AssetCode}, nil
	}

	closeRepair := existing.Status == StatusRepair
	if err := s.repo.UpdateDetails(dto.AssetCode, dto, closeRepair); err != nil {
		s.logger.Error("failed to update asset", "error", err, "asset_code", dto.AssetCode)
		return nil, err
	}

	s.logger.Info("asset updated", "asset_code", dto.AssetCode, "repair_closed", closeRepair)
	return &CreateAssetResponse{Message: "Asset updated", AssetCode: dto.AssetCode}, nil
}

// createWithGeneratedCode probes prefix+DDMMYY+NNN codes starting at 001.
// A concurrent insert of the same candidate surfaces as a duplicate-key
// conflict from the repository and we move on to the next sequence number.
func (s *Service) createWithGeneratedCode(dto CreateAssetDTO) (*CreateAssetResponse, error) {
	prefix := fallbackPrefix
	if name, found, err := s.categories.NameByID(dto.CategoryID); err != nil {
		s.logger.Error("failed to resolve category", "error", err, "category_id", dto.CategoryID)
		return nil, err
	} else if found {
		prefix = CodePrefix(name)
	}

	day := s.now()
	for seq := 1; seq <= maxCodeSequence; seq++ {
		code := FormatCode(prefix, day, seq)

		exists, err := s.repo.CodeExists(code)
		if err != nil {
			s.logger.Error("failed to probe asset code", "error", err, "asset_code", code)
			return nil, err
		}
		if exists {
			continue
		}

		a := newFromDTO(dto, s.now())
		a.AssetCode = code
		err = s.repo.Create(a)
		if err == ErrDuplicateAssetCode {
			// lost the race for this candidate, try the next one
			continue
		}
		if err != nil {
			s.logger.Error("failed to create asset", "error", err, "asset_code", code)
			return nil, err
		}

		s.logger.Info("asset created with generated code", "asset_code", code, "category_id", dto.CategoryID)
		return &CreateAssetResponse{Message: "Asset added successfully", AssetCode: code}, nil
	}

	s.logger.Error("asset code space exhausted", "prefix", prefix)
	return nil, ErrDuplicateAssetCode
}

// Assign moves an instock asset to an active employee.
func (s *Service) Assign(dto AssignDTO) (*TransitionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByCode(dto.AssetCode)
	if err != nil {
		return nil, err
	}
	if a.Status == StatusAssigned {
		s.logger.Warn("assign rejected: already assigned", "asset_code", dto.AssetCode)
		return nil, ErrAssetAlreadyAssigned
	}
	if !a.CanBeAssigned() {
		s.logger.Warn("assign rejected: asset not in stock", "asset_code", dto.AssetCode, "status", a.Status)
		return nil, ErrAssetNotInStock
	}

	active, err := s.employees.ActiveExists(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to look up employee", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}
	if !active {
		return nil, ErrEmployeeNotFound
	}

	if err := s.repo.Assign(dto.AssetCode, dto.EmployeeID); err != nil {
		s.logger.Error("assign transition failed", "error", err, "asset_code", dto.AssetCode, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("asset assigned", "asset_code", dto.AssetCode, "employee_id", dto.EmployeeID)
	return &TransitionResponse{Message: "Asset assigned successfully", AssetCode: dto.AssetCode, Status: StatusAssigned}, nil
}

// Return closes the active assignment and puts the asset back in stock.
func (s *Service) Return(dto ReturnDTO) (*TransitionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByCode(dto.AssetCode); err != nil {
		return nil, err
	}

	if err := s.repo.Return(dto.AssetCode, dto.Remarks); err != nil {
		s.logger.Error("return transition failed", "error", err, "asset_code", dto.AssetCode)
		return nil, err
	}

	s.logger.Info("asset returned to stock", "asset_code", dto.AssetCode)
	return &TransitionResponse{Message: "Asset returned to stock", AssetCode: dto.AssetCode, Status: StatusInStock}, nil
}

// SendToRepair moves a non-retired asset into repair, closing any active
// assignment and any previous repair record.
func (s *Service) SendToRepair(dto RepairDTO) (*TransitionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByCode(dto.AssetCode)
	if err != nil {
		return nil, err
	}
	if !a.CanBeSentToRepair() {
		s.logger.Warn("repair rejected: asset retired", "asset_code", dto.AssetCode)
		return nil, ErrAssetRetired
	}

	if err := s.repo.SendToRepair(dto.AssetCode, dto.RepairEmployeeID, dto.Remarks); err != nil {
		s.logger.Error("repair transition failed", "error", err, "asset_code", dto.AssetCode)
		return nil, err
	}

	s.logger.Info("asset moved to repair", "asset_code", dto.AssetCode, "assignee", dto.RepairEmployeeID)
	return &TransitionResponse{Message: "Asset moved to repair", AssetCode: dto.AssetCode, Status: StatusRepair}, nil
}

// CompleteRepair closes the repair record and returns the asset to stock.
// The asset type is overwritten to "Repaired", matching the behavior the
// inventory team relies on to spot reworked units.
func (s *Service) CompleteRepair(code string) (*TransitionResponse, error) {
	a, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if !a.CanCompleteRepair() {
		s.logger.Warn("complete repair rejected", "asset_code", code, "status", a.Status)
		return nil, ErrAssetNotInRepair
	}

	if err := s.repo.CompleteRepair(code); err != nil {
		s.logger.Error("complete repair transition failed", "error", err, "asset_code", code)
		return nil, err
	}

	s.logger.Info("repair completed", "asset_code", code)
	return &TransitionResponse{Message: "Asset repaired and moved to stock", AssetCode: code, Status: StatusInStock}, nil
}

// MarkMissing records an asset as missing from any non-retired state.
func (s *Service) MarkMissing(dto MissingDTO) (*TransitionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByCode(dto.AssetCode)
	if err != nil {
		return nil, err
	}
	if !a.CanBeMarkedMissing() {
		return nil, ErrAssetRetired
	}

	if err := s.repo.MarkMissing(dto.AssetCode, dto.Remarks); err != nil {
		s.logger.Error("missing transition failed", "error", err, "asset_code", dto.AssetCode)
		return nil, err
	}

	s.logger.Info("asset marked missing", "asset_code", dto.AssetCode)
	return &TransitionResponse{Message: "Asset marked as missing", AssetCode: dto.AssetCode, Status: StatusMissing}, nil
}

// RecoverMissing brings a missing asset back into stock. A history entry is
// written like for every other transition.
func (s *Service) RecoverMissing(code string) (*TransitionResponse, error) {
	a, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if !a.CanBeRecovered() {
		s.logger.Warn("recover rejected", "asset_code", code, "status", a.Status)
		return nil, ErrAssetNotMissing
	}

	if err := s.repo.Recover(code); err != nil {
		s.logger.Error("recover transition failed", "error", err, "asset_code", code)
		return nil, err
	}

	s.logger.Info("missing asset recovered", "asset_code", code)
	return &TransitionResponse{Message: "Missing asset recovered and moved to stock", AssetCode: code, Status: StatusInStock}, nil
}

// Retire is the terminal transition; it requires the admin secret.
func (s *Service) Retire(dto RetireDTO) (*TransitionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if !s.secrets.Verify(dto.Secret) {
		s.logger.Warn("retire rejected: invalid admin secret", "asset_code", dto.AssetCode)
		return nil, ErrInvalidAdminSecret
	}

	a, err := s.repo.GetByCode(dto.AssetCode)
	if err != nil {
		return nil, err
	}
	if a.IsRetired() {
		return nil, ErrAssetRetired
	}

	if err := s.repo.Retire(dto.AssetCode, dto.Remarks); err != nil {
		s.logger.Error("retire transition failed", "error", err, "asset_code", dto.AssetCode)
		return nil, err
	}

	s.logger.Info("asset retired", "asset_code", dto.AssetCode)
	return &TransitionResponse{Message: "Asset retired successfully", AssetCode: dto.AssetCode, Status: StatusRetired}, nil
}

func (s *Service) ActiveRepairs() ([]RepairItem, error) {
	items, err := s.repo.ActiveRepairs()
	if err != nil {
		s.logger.Error("failed to list active repairs", "error", err)
		return nil, err
	}
	return items, nil
}

func newFromDTO(dto CreateAssetDTO, now time.Time) *Asset {
	return &Asset{
		AssetCode:          dto.AssetCode,
		CategoryID:         dto.CategoryID,
		Type:               dto.Type,
		Brand:              dto.Brand,
		Model:              dto.Model,
		SerialNumber:       dto.SerialNumber,
		Status:             StatusInStock,
		Location:           dto.Location,
		WarrantyApplicable: dto.WarrantyApplicable,
		WarrantyEndDate:    dto.WarrantyEndDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
