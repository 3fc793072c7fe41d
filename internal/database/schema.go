package database

import "database/sql"

// schema lists the table definitions in dependency order. Catalog rows are
// managed out of band (cmd/seed); orders, order_items and addresses exist for
// the checkout flow that is still stubbed at the API level.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id           CHAR(36) PRIMARY KEY,
		email        VARCHAR(255) NOT NULL UNIQUE,
		first_name   VARCHAR(100),
		last_name    VARCHAR(100),
		phone        VARCHAR(20),
		date_of_birth DATE,
		created_at   DATETIME NOT NULL,
		updated_at   DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id          CHAR(36) PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		slug        VARCHAR(100) NOT NULL UNIQUE,
		description TEXT,
		parent_id   CHAR(36),
		image_url   VARCHAR(500),
		is_active   BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL,
		INDEX category_parent_idx (parent_id)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id                CHAR(36) PRIMARY KEY,
		name              VARCHAR(200) NOT NULL,
		slug              VARCHAR(200) NOT NULL UNIQUE,
		description       TEXT,
		short_description TEXT,
		sku               VARCHAR(100) UNIQUE,
		price             DECIMAL(10,2) NOT NULL,
		compare_price     DECIMAL(10,2),
		category_id       CHAR(36) NOT NULL,
		inventory         INT NOT NULL DEFAULT 0,
		weight            DECIMAL(8,3),
		images            JSON,
		tags              JSON,
		meta_title        VARCHAR(200),
		meta_description  TEXT,
		is_active         BOOLEAN NOT NULL DEFAULT TRUE,
		is_featured       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at        DATETIME NOT NULL,
		updated_at        DATETIME NOT NULL,
		INDEX product_category_idx (category_id),
		INDEX product_active_idx (is_active),
		INDEX product_featured_idx (is_featured)
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id         CHAR(36) PRIMARY KEY,
		user_id    CHAR(36) NOT NULL,
		product_id CHAR(36) NOT NULL,
		quantity   INT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		INDEX cart_user_idx (user_id),
		INDEX cart_user_product_idx (user_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id              CHAR(36) PRIMARY KEY,
		user_id         CHAR(36) NOT NULL,
		order_number    VARCHAR(50) NOT NULL UNIQUE,
		status          ENUM('pending','processing','shipped','delivered','cancelled','refunded') NOT NULL DEFAULT 'pending',
		subtotal        DECIMAL(10,2) NOT NULL,
		tax_amount      DECIMAL(10,2) NOT NULL DEFAULT 0,
		shipping_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
		total_amount    DECIMAL(10,2) NOT NULL,
		currency        VARCHAR(3) NOT NULL DEFAULT 'USD',
		payment_status  VARCHAR(20) NOT NULL DEFAULT 'pending',
		notes           TEXT,
		created_at      DATETIME NOT NULL,
		updated_at      DATETIME NOT NULL,
		INDEX order_user_idx (user_id),
		INDEX order_status_idx (status)
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id          CHAR(36) PRIMARY KEY,
		order_id    CHAR(36) NOT NULL,
		product_id  CHAR(36) NOT NULL,
		quantity    INT NOT NULL,
		unit_price  DECIMAL(10,2) NOT NULL,
		total_price DECIMAL(10,2) NOT NULL,
		created_at  DATETIME NOT NULL,
		INDEX order_item_order_idx (order_id)
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id          CHAR(36) PRIMARY KEY,
		user_id     CHAR(36) NOT NULL,
		type        VARCHAR(20) NOT NULL DEFAULT 'shipping',
		first_name  VARCHAR(100) NOT NULL,
		last_name   VARCHAR(100) NOT NULL,
		company     VARCHAR(100),
		address_1   VARCHAR(200) NOT NULL,
		address_2   VARCHAR(200),
		city        VARCHAR(100) NOT NULL,
		province    VARCHAR(100),
		postal_code VARCHAR(20),
		country     VARCHAR(100) NOT NULL,
		phone       VARCHAR(20),
		is_default  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL,
		INDEX address_user_idx (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id          CHAR(36) PRIMARY KEY,
		user_id     CHAR(36) NOT NULL,
		message     TEXT NOT NULL,
		reply       TEXT NOT NULL,
		model       VARCHAR(100),
		tokens_used INT NOT NULL DEFAULT 0,
		created_at  DATETIME NOT NULL,
		INDEX chat_user_idx (user_id)
	)`,
}

// EnsureSchema creates any missing tables. It never alters existing ones.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
