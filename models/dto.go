package models

import (
	"time"

	"github.com/cornerstore/backend/utils"
)

// Response shapes for the API. The DTO graphs are one-directional on
// purpose: an Order carries a cashier summary without its order list, and a
// Cashier carries orders whose line items never point back. That keeps the
// JSON output cycle-free without leaning on serializer tricks.

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductDTO struct {
	ID         uint         `json:"id"`
	Name       string       `json:"product_name"`
	Price      float64      `json:"price"`
	Brand      string       `json:"brand"`
	CategoryID uint         `json:"category_id"`
	Category   *CategoryDTO `json:"category,omitempty"`
}

type OrderLineDTO struct {
	ID        uint        `json:"id"`
	OrderID   uint        `json:"order_id"`
	ProductID uint        `json:"product_id"`
	Product   *ProductDTO `json:"product,omitempty"`
	Quantity  int         `json:"quantity"`
}

// CashierSummaryDTO is the cashier as embedded under an order: no order
// list, so the graph stays one-directional.
type CashierSummaryDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

type OrderDTO struct {
	ID            uint               `json:"id"`
	CashierID     uint               `json:"cashier_id"`
	Cashier       *CashierSummaryDTO `json:"cashier,omitempty"`
	OrderProducts []OrderLineDTO     `json:"order_products"`
	Total         float64            `json:"total"`
	PaidOnDate    *time.Time         `json:"paid_on_date,omitempty"`
}

type CashierDTO struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	Orders    []OrderDTO `json:"orders"`
}

// ProductWithTotalDTO is a product plus its summed ordered quantity, as
// returned by the popular-products report.
type ProductWithTotalDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"product_name"`
	Price         float64 `json:"price"`
	Brand         string  `json:"brand"`
	CategoryID    uint    `json:"category_id"`
	TotalQuantity int     `json:"total_quantity"`
}

// NewCategoryDTO projects a category.
func NewCategoryDTO(cat Category) *CategoryDTO {
	return &CategoryDTO{ID: cat.ID, Name: cat.Name}
}

// NewProductDTO projects a product. The nested category is attached only
// when withCategory is set and the association was actually loaded.
func NewProductDTO(p Product, withCategory bool) ProductDTO {
	dto := ProductDTO{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Brand:      p.Brand,
		CategoryID: p.CategoryID,
	}
	if withCategory && p.Category.ID != 0 {
		dto.Category = NewCategoryDTO(p.Category)
	}
	return dto
}

// NewOrderLineDTO projects a line item with its product (no category).
func NewOrderLineDTO(op OrderProduct) OrderLineDTO {
	dto := OrderLineDTO{
		ID:        op.ID,
		OrderID:   op.OrderID,
		ProductID: op.ProductID,
		Quantity:  op.Quantity,
	}
	if op.Product.ID != 0 {
		p := NewProductDTO(op.Product, false)
		dto.Product = &p
	}
	return dto
}

// NewOrderDTO projects an order with its line items and computed total.
// Pass withCashier when the cashier association is preloaded.
func NewOrderDTO(o Order, withCashier bool) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID,
		CashierID:     o.CashierID,
		OrderProducts: make([]OrderLineDTO, 0, len(o.OrderProducts)),
		Total:         OrderTotal(o.OrderProducts),
		PaidOnDate:    o.PaidOnDate,
	}
	if withCashier && o.Cashier.ID != 0 {
		dto.Cashier = &CashierSummaryDTO{
			ID:        o.Cashier.ID,
			FirstName: o.Cashier.FirstName,
			LastName:  o.Cashier.LastName,
			FullName:  o.Cashier.FullName(),
		}
	}
	for _, op := range o.OrderProducts {
		dto.OrderProducts = append(dto.OrderProducts, NewOrderLineDTO(op))
	}
	return dto
}

// NewCashierDTO projects a cashier with their orders.
func NewCashierDTO(c Cashier) CashierDTO {
	dto := CashierDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Orders:    make([]OrderDTO, 0, len(c.Orders)),
	}
	for _, o := range c.Orders {
		dto.Orders = append(dto.Orders, NewOrderDTO(o, false))
	}
	return dto
}

// OrderTotal sums quantity times product price over the line items. When a
// line item's product was not resolved the total degrades to the partial sum
// accumulated so far rather than failing.
func OrderTotal(lines []OrderProduct) float64 {
	var total float64
	for _, op := range lines {
		if op.Product.ID == 0 {
			return utils.RoundPrice(total)
		}
		total += float64(op.Quantity) * op.Product.Price
	}
	return utils.RoundPrice(total)
}
