package services

import (
	"sort"

	"gorm.io/gorm"

	"github.com/cornerstore/backend/models"
)

// DefaultPopularAmount is how many rows the popular-products report returns
// when the caller does not ask for a specific amount.
const DefaultPopularAmount = 5

type ProductService struct {
	DB *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

// ProductPatch is a partial product payload. Pointer fields distinguish
// "absent from the JSON" (nil, keep the stored value) from "present"
// (overwrite, explicit zero included). Sending null for a field behaves the
// same as leaving it out.
type ProductPatch struct {
	Name       *string  `json:"product_name"`
	Price      *float64 `json:"price"`
	Brand      *string  `json:"brand"`
	CategoryID *uint    `json:"category_id"`
}

// ApplyPatch merges the patch onto the product in place. Applying the same
// patch twice leaves the product unchanged after the first application.
func (ps *ProductService) ApplyPatch(product *models.Product, patch ProductPatch) {
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Brand != nil {
		product.Brand = *patch.Brand
	}
	if patch.CategoryID != nil {
		product.CategoryID = *patch.CategoryID
	}
}

// PopularProducts loads every line item with its product and ranks the
// distinct products by total ordered quantity, capped at amount rows.
func (ps *ProductService) PopularProducts(amount int) ([]models.ProductWithTotalDTO, error) {
	var lines []models.OrderProduct
	if err := ps.DB.Preload("Product").Find(&lines).Error; err != nil {
		return nil, err
	}
	return RankPopular(lines, amount), nil
}

// RankPopular groups line items by product id, sums the quantities per
// group, and returns the groups sorted by summed quantity descending,
// truncated to amount rows. amount <= 0 yields an empty slice. Descriptive
// fields come from the first line item seen for each product; the order
// among equal totals follows first encounter and is not otherwise defined.
func RankPopular(lines []models.OrderProduct, amount int) []models.ProductWithTotalDTO {
	results := make([]models.ProductWithTotalDTO, 0)
	if amount <= 0 {
		return results
	}

	index := make(map[uint]int)
	for _, op := range lines {
		if i, seen := index[op.ProductID]; seen {
			results[i].TotalQuantity += op.Quantity
			continue
		}
		index[op.ProductID] = len(results)
		results = append(results, models.ProductWithTotalDTO{
			ID:            op.Product.ID,
			Name:          op.Product.Name,
			Price:         op.Product.Price,
			Brand:         op.Product.Brand,
			CategoryID:    op.Product.CategoryID,
			TotalQuantity: op.Quantity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalQuantity > results[j].TotalQuantity
	})

	if amount < len(results) {
		results = results[:amount]
	}
	return results
}
