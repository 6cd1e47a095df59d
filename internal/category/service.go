package category

import (
	"log/slog"
	"strings"
)

type RepositoryAPI interface {
	GetActive() ([]*Category, error)
	GetActiveByName(name string) (*Category, error)
	Create(category *Category) error
	NameByID(id int64) (string, bool, error)
}

type Service struct {
	repo    RepositoryAPI
	matcher *Matcher
	logger  *slog.Logger
}

func NewService(repo RepositoryAPI, matcher *Matcher, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		matcher: matcher,
		logger:  logger,
	}
}

func (s *Service) GetActiveCategories() ([]CategoryResponse, error) {
	categories, err := s.repo.GetActive()
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err)
		return nil, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, c.ToResponse())
	}

	return responses, nil
}

// AddCategory inserts a new active category. Exact duplicates are rejected
// case-insensitively; near-duplicates are the caller's concern via
// CheckDuplicate.
func (s *Service) AddCategory(dto AddCategoryDTO) (*AddCategoryResponse, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("category validation failed", "error", err)
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)

	existing, err := s.repo.GetActiveByName(name)
	if err != nil {
		s.logger.Error("failed to check existing category", "error", err, "name", name)
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("category already exists", "name", name)
		return nil, ErrCategoryExists
	}

	c := NewCategory(name)
	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create category", "error", err, "name", name)
		return nil, err
	}

	s.logger.Info("category created", "id", c.ID, "name", c.Name)
	return &AddCategoryResponse{
		Message: "Category created successfully",
		ID:      c.ID,
		Name:    c.Name,
	}, nil
}

// CheckDuplicate reports exact and near-duplicate names among active
// categories without side effects.
func (s *Service) CheckDuplicate(dto CheckDuplicateDTO) (*MatchResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	categories, err := s.repo.GetActive()
	if err != nil {
		s.logger.Error("failed to get categories for duplicate check", "error", err)
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}

	result := s.matcher.FindSimilar(strings.TrimSpace(dto.Name), names)
	return &result, nil
}

// NameByID resolves a category name for asset-code prefixing.
func (s *Service) NameByID(id int64) (string, bool, error) {
	return s.repo.NameByID(id)
}
