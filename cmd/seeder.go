package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			fmt.Println("Clearing existing data...")
			for _, table := range []string{"asset_history", "repair_tracking", "asset_assignments", "assets", "categories", "employees"} {
				if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
		}

		categories := []string{"Laptop", "Monitor", "Keyboard", "Mouse", "Docking Station"}
		for _, name := range categories {
			var exists int
			row := gormDB.Raw("SELECT 1 FROM categories WHERE LOWER(name) = LOWER(?) AND is_active = TRUE", name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := gormDB.Exec("INSERT INTO categories (name, is_active, created_at) VALUES (?, TRUE, now())", name).Error; err != nil {
				log.Fatalf("failed to insert category %s: %v", name, err)
			}
			fmt.Println("Seeded category:", name)
		}

		employees := []struct {
			ID       string
			Name     string
			Email    string
			Location string
		}{
			{"EMP001", "Fadhil Rahman", "fadhil@mail.com", "Jakarta"},
			{"EMP002", "Padil Admin", "padil@mail.com", "Bandung"},
			{"EMP003", "Sari Wijaya", "sari@mail.com", "Jakarta"},
		}

		for _, e := range employees {
			var exists int
			row := gormDB.Raw("SELECT 1 FROM employees WHERE employee_id = ?", e.ID).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Println("employee already exists:", e.ID)
				continue
			}
			if err := gormDB.Exec(
				"INSERT INTO employees (employee_id, name, email, location, status, created_at) VALUES (?, ?, ?, ?, 'active', now())",
				e.ID, e.Name, e.Email, e.Location,
			).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.ID, err)
			}
			fmt.Println("Seeded employee:", e.ID)
		}

		fmt.Println("Seeding complete")
	},
}
