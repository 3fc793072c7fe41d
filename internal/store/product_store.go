package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bigshop/bigshop-golang/internal/models"
	"github.com/bigshop/bigshop-golang/internal/services"
)

// sortColumns maps the public sort keys onto real columns. Anything else
// falls back to created_at.
var sortColumns = map[string]string{
	"name":     "p.name",
	"price":    "p.price",
	"featured": "p.is_featured",
	"created":  "p.created_at",
}

// ListProducts returns one page of active products matching the filter plus
// the total match count ignoring pagination.
func (s *Store) ListProducts(ctx context.Context, f services.ProductFilter) ([]models.Product, int, error) {
	var where strings.Builder
	var args []interface{}

	where.WriteString(" WHERE p.is_active = TRUE")
	if f.CategoryID != "" {
		where.WriteString(" AND p.category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.Search != "" {
		where.WriteString(" AND p.name LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}
	if f.MinPrice != nil {
		where.WriteString(" AND p.price >= ?")
		args = append(args, f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		where.WriteString(" AND p.price <= ?")
		args = append(args, f.MaxPrice.String())
	}
	if f.Featured != nil {
		where.WriteString(" AND p.is_featured = ?")
		args = append(args, *f.Featured)
	}

	orderBy, ok := sortColumns[f.SortBy]
	if !ok {
		orderBy = sortColumns["created"]
	}
	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		direction = "ASC"
	}

	query := fmt.Sprintf("SELECT %s FROM products p%s ORDER BY %s %s LIMIT ? OFFSET ?",
		productColumns, where.String(), orderBy, direction)
	pageArgs := append(append([]interface{}{}, args...), f.Limit, f.Offset)

	rows, err := s.DB.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM products p" + where.String()
	if err := s.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetProductByID looks up one active product with its category summary.
// Missing rows surface as sql.ErrNoRows.
func (s *Store) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s, c.id, c.name, c.slug, c.description
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = ? AND p.is_active = TRUE`, productColumns)

	row := s.DB.QueryRowContext(ctx, query, id)

	var (
		p                 models.Product
		description       sql.NullString
		shortDescription  sql.NullString
		sku               sql.NullString
		comparePrice      decimal.NullDecimal
		weight            decimal.NullDecimal
		imagesJSON        []byte
		tagsJSON          []byte
		metaTitle         sql.NullString
		metaDescription   sql.NullString
		catID, catName    sql.NullString
		catSlug, catDescr sql.NullString
	)

	if err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &description, &shortDescription, &sku,
		&p.Price, &comparePrice, &p.CategoryID, &p.Inventory, &weight,
		&imagesJSON, &tagsJSON, &metaTitle, &metaDescription,
		&p.IsActive, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catSlug, &catDescr,
	); err != nil {
		return nil, err
	}

	p.Description = nullString(description)
	p.ShortDescription = nullString(shortDescription)
	p.SKU = nullString(sku)
	p.MetaTitle = nullString(metaTitle)
	p.MetaDescription = nullString(metaDescription)
	p.ComparePrice = nullDecimal(comparePrice)
	p.Weight = nullDecimal(weight)
	p.Images = parseStringList(imagesJSON)
	p.Tags = parseStringList(tagsJSON)

	if catID.Valid {
		p.Category = &models.CategorySummary{
			ID:          catID.String,
			Name:        catName.String,
			Slug:        catSlug.String,
			Description: nullString(catDescr),
		}
	}

	return &p, nil
}

// FirstProductByName returns the first active product whose name contains
// the given text. No ranking beyond natural storage order.
func (s *Store) FirstProductByName(ctx context.Context, name string) (*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products p WHERE p.is_active = TRUE AND p.name LIKE ? LIMIT 1", productColumns)
	return scanProduct(s.DB.QueryRowContext(ctx, query, "%"+name+"%"))
}
