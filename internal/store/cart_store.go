package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bigshop/bigshop-golang/internal/models"
)

// CartLines returns the user's cart rows joined to their products, already
// restricted to active products.
func (s *Store) CartLines(ctx context.Context, userID string) ([]models.CartLine, error) {
	query := `
		SELECT ci.id, ci.quantity, ci.created_at,
			p.id, p.name, p.price, p.compare_price, p.images, p.inventory, p.is_active
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = ? AND p.is_active = TRUE
		ORDER BY ci.created_at`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var (
			line         models.CartLine
			comparePrice decimal.NullDecimal
			imagesJSON   []byte
		)
		if err := rows.Scan(
			&line.ID, &line.Quantity, &line.CreatedAt,
			&line.Product.ID, &line.Product.Name, &line.Product.Price,
			&comparePrice, &imagesJSON, &line.Product.Inventory, &line.Product.IsActive,
		); err != nil {
			return nil, err
		}
		line.Product.ComparePrice = nullDecimal(comparePrice)
		line.Product.Images = parseStringList(imagesJSON)
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// FindCartItem returns the user's cart row for a product, or sql.ErrNoRows.
func (s *Store) FindCartItem(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = ? AND product_id = ?`, userID, productID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetCartItemWithProduct looks up a cart row by id scoped to its owner,
// joined with the product. Non-owned rows look identical to missing ones.
func (s *Store) GetCartItemWithProduct(ctx context.Context, itemID, userID string) (*models.CartItem, *models.Product, error) {
	query := fmt.Sprintf(`
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at, %s
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.id = ? AND ci.user_id = ?`, productColumns)

	row := s.DB.QueryRowContext(ctx, query, itemID, userID)

	var (
		item             models.CartItem
		p                models.Product
		description      sql.NullString
		shortDescription sql.NullString
		sku              sql.NullString
		comparePrice     decimal.NullDecimal
		weight           decimal.NullDecimal
		imagesJSON       []byte
		tagsJSON         []byte
		metaTitle        sql.NullString
		metaDescription  sql.NullString
	)

	if err := row.Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
		&p.ID, &p.Name, &p.Slug, &description, &shortDescription, &sku,
		&p.Price, &comparePrice, &p.CategoryID, &p.Inventory, &weight,
		&imagesJSON, &tagsJSON, &metaTitle, &metaDescription,
		&p.IsActive, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, nil, err
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

	return &item, &p, nil
}

// InsertCartItem persists a new cart row.
func (s *Store) InsertCartItem(ctx context.Context, item *models.CartItem) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt)
	return err
}

// UpdateCartItemQuantity sets a row's quantity and refreshes updated_at.
func (s *Store) UpdateCartItemQuantity(ctx context.Context, item *models.CartItem) error {
	_, err := s.DB.ExecContext(ctx, `
		UPDATE cart_items SET quantity = ?, updated_at = ? WHERE id = ?`,
		item.Quantity, item.UpdatedAt, item.ID)
	return err
}

// DeleteCartItem removes one row scoped to its owner and reports how many
// rows went away.
func (s *Store) DeleteCartItem(ctx context.Context, itemID, userID string) (int64, error) {
	result, err := s.DB.ExecContext(ctx,
		"DELETE FROM cart_items WHERE id = ? AND user_id = ?", itemID, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ClearCartItems removes every row belonging to the user.
func (s *Store) ClearCartItems(ctx context.Context, userID string) (int64, error) {
	result, err := s.DB.ExecContext(ctx,
		"DELETE FROM cart_items WHERE user_id = ?", userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
