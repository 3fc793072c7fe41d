package store

import (
	"context"
	"database/sql"

	"github.com/bigshop/bigshop-golang/internal/models"
)

// ListCategories returns every active category ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, slug, description, parent_id, image_url, is_active, created_at, updated_at
		FROM categories
		WHERE is_active = TRUE
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var (
			c                  models.Category
			description        sql.NullString
			parentID, imageURL sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &description, &parentID, &imageURL,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Description = nullString(description)
		c.ParentID = nullString(parentID)
		c.ImageURL = nullString(imageURL)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
