package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-app/cashflow/internal/common"
	"github.com/cashflow-app/cashflow/internal/model"
	"github.com/cashflow-app/cashflow/internal/storage/query"
)

// categoryColumns whitelists the fields a predicate or sort key may reference
// on the category entity.
var categoryColumns = map[string]string{
	"name":       "name",
	"icon":       "icon",
	"color":      "color",
	"created_at": "created_at",
}

// GetCategories returns all categories ordered by name ascending.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	return s.QueryCategories(ctx, nil, []query.SortKey{query.Asc("name")})
}

// QueryCategories runs a general predicate query over categories.
func (s *SQLiteStorage) QueryCategories(ctx context.Context, pred *query.Predicate, sort []query.SortKey) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	where, args, err := pred.SQL(categoryColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	orderBy, err := query.OrderBy(sort, categoryColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	q := `SELECT id, name, icon, color, created_at FROM categories`
	if where != "" {
		q += " WHERE " + where
	}
	if orderBy != "" {
		q += " ORDER BY " + orderBy
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storageErr("failed to query categories", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.CreatedAt); err != nil {
			return nil, storageErr("failed to scan category", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("error iterating categories", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns the first category with the given name, or nil
// when none exists. Matching is case-sensitive; the name is a lookup
// convenience, not a uniqueness constraint.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	q := `
		SELECT id, name, icon, color, created_at
		FROM categories
		WHERE name = ?
		ORDER BY created_at
		LIMIT 1`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, q, name).Scan(
		&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, storageErr("failed to query category", err)
	}

	return &cat, nil
}

// CreateCategory persists a new category with a fresh id. The name is
// trimmed first; an empty-after-trim name is a validation error. Omitted
// icon or color fall back to the model defaults.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name, icon, color string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", common.ErrValidation)
	}

	if icon == "" {
		icon = model.DefaultCategoryIcon
	}
	if color == "" {
		color = model.DefaultCategoryColor
	}

	category := &model.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		CreatedAt: time.Now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, icon, color, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.Icon, category.Color, category.CreatedAt,
	)
	if err != nil {
		return nil, storageErr("failed to create category", err)
	}

	slog.Info("created category", "name", name, "id", category.ID)
	return category, nil
}

// UpdateCategory persists mutations already applied to the entity. It fails
// with common.ErrNotFound when the category was deleted underneath, so an
// in-flight edit never silently recreates a deleted row.
func (s *SQLiteStorage) UpdateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: category cannot be nil", common.ErrValidation)
	}
	if err := validateString(category.ID, "category ID"); err != nil {
		return err
	}

	name := strings.TrimSpace(category.Name)
	if name == "" {
		return fmt.Errorf("%w: category name cannot be empty", common.ErrValidation)
	}
	category.Name = name

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, icon = ?, color = ? WHERE id = ?`,
		category.Name, category.Icon, category.Color, category.ID,
	)
	if err != nil {
		return storageErr("failed to update category", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storageErr("failed to check update result", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: category %s", common.ErrNotFound, category.ID)
	}

	slog.Debug("updated category", "id", category.ID, "name", category.Name)
	return nil
}

// DeleteCategory removes the category. The delete does not cascade:
// referencing transactions keep their rows and read back with a nil category.
// Deleting an already-deleted category returns common.ErrNotFound; delete
// flows treat that as a successful no-op.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return storageErr("failed to delete category", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storageErr("failed to check delete result", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: category %s", common.ErrNotFound, id)
	}

	slog.Info("deleted category", "id", id)
	return nil
}
