package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/cornerstore/backend/models"
	"github.com/cornerstore/backend/utils"
)

// Seed loads the store fixtures. It is a no-op once cashiers exist, so it
// is safe to run on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Cashier{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cashiers := []models.Cashier{
		{ID: 1, FirstName: "Tyler", LastName: "Parker"},
		{ID: 2, FirstName: "Peter", LastName: "Parker"},
		{ID: 3, FirstName: "Severus", LastName: "Snake"},
		{ID: 4, FirstName: "Balynda", LastName: " Myars"},
	}

	categories := []models.Category{
		{ID: 1, Name: "Soda"},
		{ID: 2, Name: "Energy"},
		{ID: 3, Name: "Candy"},
		{ID: 4, Name: "Snacks"},
		{ID: 5, Name: "Home"},
	}

	products := []models.Product{
		{ID: 1, Name: "Coca-Cola", Price: 2.00, Brand: "Coke", CategoryID: 1},
		{ID: 2, Name: "Gummy Worms", Price: 3.50, Brand: "Haribo", CategoryID: 3},
		{ID: 3, Name: "Monster", Price: 3.00, Brand: "Monster", CategoryID: 2},
		{ID: 4, Name: "USB Car Charger", Price: 7.50, Brand: "ZapIT", CategoryID: 5},
		{ID: 5, Name: "M&Ms", Price: 4.00, Brand: "Nestle", CategoryID: 3},
		{ID: 6, Name: "ChexMix", Price: 3.50, Brand: "Chex", CategoryID: 4},
	}

	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: 1, CashierID: 1},
		{ID: 2, CashierID: 1, PaidOnDate: &jan1},
		{ID: 3, CashierID: 2, PaidOnDate: &jan2},
		{ID: 4, CashierID: 3},
		{ID: 5, CashierID: 4},
	}

	lines := []models.OrderProduct{
		{ID: 1, OrderID: 1, ProductID: 6, Quantity: 2},
		{ID: 2, OrderID: 1, ProductID: 5, Quantity: 1},
		{ID: 3, OrderID: 2, ProductID: 3, Quantity: 2},
		{ID: 4, OrderID: 3, ProductID: 1, Quantity: 4},
		{ID: 5, OrderID: 4, ProductID: 2, Quantity: 2},
		{ID: 6, OrderID: 4, ProductID: 4, Quantity: 1},
		{ID: 7, OrderID: 5, ProductID: 5, Quantity: 4},
		{ID: 8, OrderID: 5, ProductID: 2, Quantity: 2},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cashiers).Error; err != nil {
			return err
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		utils.InfoLogger.Println("Seeded store fixtures")
		return nil
	})
}
