package migration

import (
	"fmt"
	"log"

	"Masterchef-Web/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Session{}); err != nil {
		log.Fatalf("Error migrating session database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
