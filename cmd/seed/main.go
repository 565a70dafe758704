package main

import (
	"log"
	"os"

	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding demo store data\n")

	// Admin user
	adminEmail := getEnvOr("SEED_ADMIN_EMAIL", "admin@example.com")
	adminPassword := getEnvOr("SEED_ADMIN_PASSWORD", "changeme")

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		color.Yellow("Admin user %s already exists, skipping...", adminEmail)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error: Failed to hash admin password: %v", err)
		}
		hashStr := string(hash)
		admin := model.User{
			Id:           uuid.New(),
			Email:        adminEmail,
			PasswordHash: &hashStr,
			FullName:     "Store Admin",
			Role:         "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			color.Red("Failed to create admin user: %v", err)
		} else {
			color.Green("Created admin user: %s", adminEmail)
		}
	}

	// Demo products
	products := []model.Product{
		{Id: uuid.New(), Name: "Classic T-Shirt", Description: "Plain cotton tee", Price: 19.90, StockQuantity: 40, ManageStock: true},
		{Id: uuid.New(), Name: "Canvas Tote Bag", Description: "Everyday carry bag", Price: 12.50, StockQuantity: 25, ManageStock: true},
		{Id: uuid.New(), Name: "Ceramic Mug", Description: "350ml mug", Price: 9.00, StockQuantity: 6, ManageStock: true},
		{Id: uuid.New(), Name: "Gift Card", Description: "Digital gift card", Price: 50.00, StockQuantity: 0, ManageStock: false},
	}
	for _, p := range products {
		var found model.Product
		if err := db.Where("name = ?", p.Name).First(&found).Error; err == nil {
			color.Yellow("Product '%s' already exists, skipping...", p.Name)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			color.Red("Failed to create product '%s': %v", p.Name, err)
		} else {
			color.Green("Created product: %s", p.Name)
		}
	}

	// Demo coupons
	coupons := []model.Coupon{
		{Id: uuid.New(), Code: "WELCOME10", DiscountType: "fixed", Amount: 10, Active: true},
		{Id: uuid.New(), Code: "SAVE15", DiscountType: "percent", Amount: 15, Active: true},
	}
	for _, c := range coupons {
		var found model.Coupon
		if err := db.Where("code = ?", c.Code).First(&found).Error; err == nil {
			color.Yellow("Coupon '%s' already exists, skipping...", c.Code)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			color.Red("Failed to create coupon '%s': %v", c.Code, err)
		} else {
			color.Green("Created coupon: %s", c.Code)
		}
	}

	color.Cyan("\n✅ Seeding completed")
}

func getEnvOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
