package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// categoryRepository is the SQL-backed implementation of [CategoryRepository].
// Every statement carries the owning user's id in its WHERE clause, so a
// category of another user is indistinguishable from a missing one.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns every live category of the user, oldest first.
func (r *categoryRepository) ListByUser(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategoriesByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListByUser").Msg("error querying categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Color, &category.Icon, &category.CreatedAt, &category.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*categoryRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// GetByID retrieves a single live category scoped to its owner.
func (r *categoryRepository) GetByID(ctx context.Context, categoryID int64, userID int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	var category models.Category
	row := r.db.QueryRowContext(ctx, getCategoryByID, categoryID, userID)
	if err := row.Scan(&category.ID, &category.UserID, &category.Name, &category.Color, &category.Icon, &category.CreatedAt, &category.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrNotFound
		}
		log.Err(err).Str("func", "*categoryRepository.GetByID").Msg("error: scanning error")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return category, nil
}

// Create inserts a new category and returns it with its server-assigned ID.
func (r *categoryRepository) Create(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCategory,
		category.UserID, category.Name, category.Color, category.Icon,
		category.CreatedAt, category.UpdatedAt,
	)
	if err := row.Scan(&category.ID); err != nil {
		log.Err(err).Str("func", "*categoryRepository.Create").Msg("error creating category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}

// Save overwrites the mutable columns of the category.
func (r *categoryRepository) Save(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, saveCategory,
		category.Name, category.Color, category.Icon, category.UpdatedAt,
		category.ID, category.UserID,
	)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.Save").Msg("error updating category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Category{}, ErrNotFound
	}

	return category, nil
}

// SoftDelete marks the category deleted. The row is kept so historical todos
// retain a valid reference.
func (r *categoryRepository) SoftDelete(ctx context.Context, categoryID int64, userID int64, now time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, softDeleteCategory, now, categoryID, userID)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.SoftDelete").Msg("error deleting category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}
