package store

import (
	"database/sql"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/bigshop/bigshop-golang/internal/models"
)

// Store is the MySQL-backed data access layer. Services receive it through
// narrow interfaces so tests can substitute in-memory fakes.
type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// productColumns is the canonical SELECT list for scanProduct. Keep the two
// in sync.
const productColumns = `p.id, p.name, p.slug, p.description, p.short_description, p.sku,
	p.price, p.compare_price, p.category_id, p.inventory, p.weight,
	p.images, p.tags, p.meta_title, p.meta_description,
	p.is_active, p.is_featured, p.created_at, p.updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
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
	)

	if err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &description, &shortDescription, &sku,
		&p.Price, &comparePrice, &p.CategoryID, &p.Inventory, &weight,
		&imagesJSON, &tagsJSON, &metaTitle, &metaDescription,
		&p.IsActive, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
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

	return &p, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullDecimal(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	d := v.Decimal
	return &d
}

// parseStringList decodes a JSON array column, returning an empty slice for
// NULL or malformed data so responses never carry "null" arrays.
func parseStringList(raw []byte) []string {
	out := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}
