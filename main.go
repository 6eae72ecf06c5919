// --- main.go ---
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env kalau ada, kalau tidak pakai environment bawaan
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env:", err)
	}

	melonsFile := getenvDefault("MELONS_FILE", "melons.txt")
	customersFile := getenvDefault("CUSTOMERS_FILE", "customers.txt")

	// Load data katalog dan customer dari flat file (sekali saat startup)
	melons, err := NewMelonStoreFromFile(melonsFile)
	if err != nil {
		log.Fatalf("❌ Gagal memuat katalog melon: %v", err)
	}
	customers, err := NewCustomerStoreFromFile(customersFile)
	if err != nil {
		log.Fatalf("❌ Gagal memuat daftar customer: %v", err)
	}
	log.Printf("✅ Loaded %d melons and %d customers", melons.Len(), customers.Len())

	r := gin.Default()

	// Setup Routes langsung dari fungsi yang sudah dibuat
	PageRoutes(r)
	MelonRoutes(r, melons)
	CartRoutes(r, melons)
	CheckoutRoutes(r)
	AuthRoutes(r, customers)

	// Menjalankan server
	addr := ":" + getenvDefault("PORT", "8080")
	if err := r.Run(addr); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
