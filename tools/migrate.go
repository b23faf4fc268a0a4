package main

import (
	"fmt"
	"os"

	"warehouse-booking/config"
	"warehouse-booking/database"
	"warehouse-booking/database/seeders"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate - Run migrations, constraints and indexes")
		fmt.Println("  go run tools/migrate.go models  - List migrated models in order")
		fmt.Println("  go run tools/migrate.go seed    - Migrate and insert the demo marketplace")
		return
	}

	switch os.Args[1] {
	case "migrate":
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("❌ Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("🚀 Running database migrations...")
		if _, err := database.InitDB(cfg); err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Migration completed successfully!")

	case "seed":
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("❌ Config error: %v\n", err)
			os.Exit(1)
		}
		db, err := database.InitDB(cfg)
		if err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		m, err := seeders.SeedDemoMarketplace(db)
		if err != nil {
			fmt.Printf("❌ Seeding failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Renter uuid: %s\n", m.Renter.Uuid)
		fmt.Printf("✅ Host uuid:   %s\n", m.Host.Uuid)
		fmt.Printf("✅ Admin uuid:  %s\n", m.Admin.Uuid)

	case "models":
		for i, model := range database.Models() {
			fmt.Printf("%2d. %T\n", i+1, model)
		}

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		fmt.Println("Available commands: migrate, models, seed")
	}
}
