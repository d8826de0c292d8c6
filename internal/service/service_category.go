package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// categoryService is the concrete implementation of CategoryService.
type categoryService struct {
	categoryRepository store.CategoryRepository
	logger             *logger.Logger
}

// NewCategoryService constructs a CategoryService backed by the given
// repository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// List returns every live category of the user.
func (s *categoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	categories, err := s.categoryRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing categories failed")
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}

	return categories, nil
}

// Get returns a single category of the user.
func (s *categoryService) Get(ctx context.Context, userID, categoryID int64) (models.Category, error) {
	return s.categoryRepository.GetByID(ctx, categoryID, userID)
}

// Create persists a new category. Omitted color and icon fall back to the
// defaults.
func (s *categoryService) Create(ctx context.Context, userID int64, request models.CreateCategoryRequest) (models.Category, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	now := time.Now()
	category := models.Category{
		UserID:    userID,
		Name:      request.Name,
		Color:     models.DefaultCategoryColor,
		Icon:      models.DefaultCategoryIcon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if request.Color != nil && *request.Color != "" {
		category.Color = *request.Color
	}
	if request.Icon != nil && *request.Icon != "" {
		category.Icon = *request.Icon
	}

	created, err := s.categoryRepository.Create(ctx, category)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("creating category failed")
		return models.Category{}, fmt.Errorf("creating category failed: %w", err)
	}

	return created, nil
}

// Update applies the non-nil fields of the request to the stored category.
func (s *categoryService) Update(ctx context.Context, userID, categoryID int64, request models.UpdateCategoryRequest) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := s.categoryRepository.GetByID(ctx, categoryID, userID)
	if err != nil {
		return models.Category{}, err
	}

	if request.Name != nil {
		category.Name = *request.Name
	}
	if request.Color != nil {
		category.Color = *request.Color
	}
	if request.Icon != nil {
		category.Icon = *request.Icon
	}
	category.UpdatedAt = time.Now()

	saved, err := s.categoryRepository.Save(ctx, category)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("categoryID", categoryID).Msg("updating category failed")
		return models.Category{}, err
	}

	return saved, nil
}

// Delete soft-deletes the category. Todos keep their reference; the joined
// category name simply disappears from read paths.
func (s *categoryService) Delete(ctx context.Context, userID, categoryID int64) error {
	return s.categoryRepository.SoftDelete(ctx, categoryID, userID, time.Now())
}
