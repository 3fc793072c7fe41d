package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/bigshop/bigshop-golang/internal/config"
	"github.com/bigshop/bigshop-golang/internal/database"
)

type seedCategory struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
}

type seedProduct struct {
	Name             string
	Description      string
	ShortDescription string
	SKU              string
	Price            string
	ComparePrice     string
	Category         int
	Inventory        int
	Weight           string
	Images           []string
	Tags             []string
	MetaTitle        string
	MetaDescription  string
	Featured         bool
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: no .env file found, relying on system environment variables")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	log.Println("starting database seeding...")

	// Clear in reverse dependency order.
	for _, table := range []string{"cart_items", "products", "categories", "users"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}
	log.Println("cleared existing data")

	now := time.Now().UTC()

	categories := []seedCategory{
		{Name: "Fruits & Vegetables", Description: "Fresh, high-quality fruits and vegetables", ImageURL: "https://images.unsplash.com/photo-1610832958506-aa56368176cf?w=500"},
		{Name: "Dairy Products", Description: "Milk, cheese, yogurt and other dairy products", ImageURL: "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=500"},
		{Name: "Meat & Fish", Description: "Fresh meat, poultry and fish", ImageURL: "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?w=500"},
		{Name: "Bread & Bakery", Description: "Fresh bread and pastries", ImageURL: "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=500"},
	}
	for i := range categories {
		categories[i].ID = uuid.NewString()
		_, err := db.Exec(
			`INSERT INTO categories (id, name, slug, description, image_url, is_active, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, TRUE, ?, ?)`,
			categories[i].ID, categories[i].Name, slug.Make(categories[i].Name),
			categories[i].Description, categories[i].ImageURL, now, now,
		)
		if err != nil {
			log.Fatalf("failed to insert category %q: %v", categories[i].Name, err)
		}
	}
	log.Printf("created %d categories", len(categories))

	products := []seedProduct{
		{
			Name:             "Gala Apples",
			Description:      "Juicy and sweet Gala apples. Perfect for eating fresh.",
			ShortDescription: "Juicy Gala apples",
			SKU:              "APPLE-GALA-001",
			Price:            "3.50",
			Category:         0,
			Inventory:        100,
			Weight:           "0.200",
			Images:           []string{"https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=500"},
			Tags:             []string{"fruit", "healthy", "vitamins"},
			MetaTitle:        "Gala Apples - fresh and juicy",
			MetaDescription:  "Buy fresh Gala apples at BigShop",
			Featured:         true,
		},
		{
			Name:             "Bananas",
			Description:      "Ripe bananas rich in potassium and vitamins. A great source of energy.",
			ShortDescription: "Ripe bananas",
			SKU:              "BANANA-001",
			Price:            "2.80",
			Category:         0,
			Inventory:        150,
			Weight:           "0.150",
			Images:           []string{"https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=500"},
			Tags:             []string{"fruit", "potassium", "energy"},
			MetaTitle:        "Fresh bananas",
			MetaDescription:  "Ripe bananas delivered to your door",
		},
		{
			Name:             "Carrots",
			Description:      "Fresh carrots rich in beta-carotene. Great for salads and cooking.",
			ShortDescription: "Fresh carrots",
			SKU:              "CARROT-001",
			Price:            "1.90",
			Category:         0,
			Inventory:        80,
			Weight:           "1.000",
			Images:           []string{"https://images.unsplash.com/photo-1445282768818-728615cc910a?w=500"},
			Tags:             []string{"vegetables", "beta-carotene", "healthy"},
			MetaTitle:        "Fresh carrots",
			MetaDescription:  "Buy fresh carrots at BigShop",
		},
		{
			Name:             "Whole Milk 3.2%",
			Description:      "Natural cow's milk with 3.2% fat. Rich in calcium and protein.",
			ShortDescription: "Milk with 3.2% fat",
			SKU:              "MILK-32-001",
			Price:            "2.50",
			Category:         1,
			Inventory:        50,
			Weight:           "1.000",
			Images:           []string{"https://images.unsplash.com/photo-1550583724-b2692b85b150?w=500"},
			Tags:             []string{"dairy", "calcium", "protein"},
			MetaTitle:        "Whole Milk 3.2% - natural and fresh",
			MetaDescription:  "Buy fresh milk with 3.2% fat",
			Featured:         true,
		},
		{
			Name:             "Gouda Cheese",
			Description:      "Classic Dutch Gouda cheese with a mild flavor and aroma.",
			ShortDescription: "Dutch Gouda cheese",
			SKU:              "CHEESE-GOUDA-001",
			Price:            "12.90",
			ComparePrice:     "15.00",
			Category:         1,
			Inventory:        25,
			Weight:           "0.300",
			Images:           []string{"https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=500"},
			Tags:             []string{"cheese", "dutch", "delicacy"},
			MetaTitle:        "Dutch Gouda cheese",
			MetaDescription:  "Natural Dutch Gouda cheese",
			Featured:         true,
		},
		{
			Name:             "Chicken Breast",
			Description:      "Fresh boneless, skinless chicken breast. A lean product with a high protein content.",
			ShortDescription: "Boneless chicken breast",
			SKU:              "CHICKEN-BREAST-001",
			Price:            "8.50",
			Category:         2,
			Inventory:        30,
			Weight:           "0.500",
			Images:           []string{"https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=500"},
			Tags:             []string{"meat", "chicken", "protein", "lean"},
			MetaTitle:        "Fresh chicken breast",
			MetaDescription:  "High-quality chicken breast",
		},
		{
			Name:             "Rye Bread",
			Description:      "Traditional rye bread baked to a classic recipe.",
			ShortDescription: "Traditional rye bread",
			SKU:              "BREAD-RYE-001",
			Price:            "2.20",
			Category:         3,
			Inventory:        40,
			Weight:           "0.400",
			Images:           []string{"https://images.unsplash.com/photo-1509440159596-0249088772ff?w=500"},
			Tags:             []string{"bread", "rye", "traditional"},
			MetaTitle:        "Rye bread",
			MetaDescription:  "Traditional rye bread",
		},
	}
	for _, p := range products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			log.Fatalf("bad price for %q: %v", p.Name, err)
		}
		var comparePrice sql.NullString
		if p.ComparePrice != "" {
			comparePrice = sql.NullString{String: p.ComparePrice, Valid: true}
		}
		images, _ := json.Marshal(p.Images)
		tags, _ := json.Marshal(p.Tags)

		_, err = db.Exec(
			`INSERT INTO products (id, name, slug, description, short_description, sku, price,
				compare_price, category_id, inventory, weight, images, tags, meta_title,
				meta_description, is_active, is_featured, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, TRUE, ?, ?, ?)`,
			uuid.NewString(), p.Name, slug.Make(p.Name), p.Description, p.ShortDescription,
			p.SKU, price.StringFixed(2), comparePrice, categories[p.Category].ID,
			p.Inventory, p.Weight, string(images), string(tags), p.MetaTitle,
			p.MetaDescription, p.Featured, now, now,
		)
		if err != nil {
			log.Fatalf("failed to insert product %q: %v", p.Name, err)
		}
	}
	log.Printf("created %d products", len(products))

	userID := uuid.NewString()
	_, err = db.Exec(
		`INSERT INTO users (id, email, first_name, last_name, phone, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, "admin@bigshop.com", "Admin", "User", "+1234567890", now, now,
	)
	if err != nil {
		log.Fatalf("failed to insert user: %v", err)
	}
	log.Printf("created sample user %s", userID)

	log.Println("database seeding completed")
}
