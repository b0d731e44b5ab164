package database

import (
	"fmt"

	"contrata_backend/internal/config"
	"contrata_backend/internal/logger"
	"contrata_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection from the loaded config.
func Connect() (*gorm.DB, error) {
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Subcategory{},
		&models.Job{},
		&models.Application{},
		&models.JobLimit{},
	)
}

// defaultCategories is the catalog jobs are filed under. Seeding is
// idempotent: existing names are left untouched.
var defaultCategories = map[string][]string{
	"Eventos":     {"Garçom", "Bartender", "Segurança de Evento", "Recepcionista"},
	"Limpeza":     {"Diarista", "Limpeza Pós-Obra", "Lavagem de Vidros"},
	"Construção":  {"Pedreiro", "Pintor", "Eletricista", "Encanador"},
	"Transporte":  {"Motorista", "Entregador", "Carreto e Mudança"},
	"Tecnologia":  {"Suporte Técnico", "Desenvolvimento Web", "Design Gráfico"},
	"Domésticos":  {"Babá", "Cuidador de Idosos", "Passeador de Cães", "Jardinagem"},
	"Alimentação": {"Cozinheiro", "Auxiliar de Cozinha", "Confeiteiro"},
}

func SeedCategories(db *gorm.DB) error {
	for name, subs := range defaultCategories {
		var category models.Category
		err := db.Where("name = ?", name).First(&category).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		category = models.Category{Name: name}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
		for _, sub := range subs {
			subcategory := models.Subcategory{Name: sub, CategoryID: category.ID}
			if err := db.Create(&subcategory).Error; err != nil {
				return err
			}
		}
		logger.Debug("seeded category", "name", name, "subcategories", len(subs))
	}
	return nil
}
