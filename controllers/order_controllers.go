package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/backend/models"
	"github.com/cornerstore/backend/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetOrderByID -> order detail with cashier, line items and products
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.
		Preload("Cashier").
		Preload("OrderProducts.Product").
		First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", models.NewOrderDTO(order, true))
}

// GetAllOrders -> all orders, or, with ?orderDate=YYYY-MM-DD, the orders
// paid on that calendar day
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.
		Preload("Cashier").
		Preload("OrderProducts.Product")

	if dateStr := c.Query("orderDate"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid orderDate, expected YYYY-MM-DD"))
			return
		}
		// paid_on_date carries a time component, so match the whole day
		query = query.Where("paid_on_date >= ? AND paid_on_date < ?", day, day.AddDate(0, 0, 1))
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]models.OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, models.NewOrderDTO(o, true))
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", dtos)
}

// CreateOrder -> create an order with its line items; every product id has
// to resolve before anything is written
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type LineReq struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,gt=0"`
	}
	type ReqBody struct {
		CashierID  uint       `json:"cashier_id" binding:"required"`
		PaidOnDate *time.Time `json:"paid_on_date"`
		Items      []LineReq  `json:"order_products"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var cashier models.Cashier
	if err := oc.DB.First(&cashier, body.CashierID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown cashier_id"))
		return
	}

	// Resolve all products up front; an unknown id rejects the whole order
	// instead of leaving a dangling line item behind.
	products := make([]models.Product, len(body.Items))
	for i, item := range body.Items {
		if err := oc.DB.Preload("Category").First(&products[i], item.ProductID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("unknown product_id %d", item.ProductID))
			return
		}
	}

	order := models.Order{
		CashierID:  body.CashierID,
		PaidOnDate: body.PaidOnDate,
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i, item := range body.Items {
			line := models.OrderProduct{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			line.Product = products[i]
			order.OrderProducts = append(order.OrderProducts, line)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order.Cashier = cashier
	utils.InfoLogger.Printf("Order #%d rang up, total %s",
		order.ID, utils.FormatPrice(models.OrderTotal(order.OrderProducts)))

	c.Header("Location", fmt.Sprintf("/orders/%d", order.ID))
	utils.RespondJSON(c, http.StatusCreated, "Order created", models.NewOrderDTO(order, true))
}

// DeleteOrder -> remove an order together with its line items
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	// The FK declares ON DELETE CASCADE, but not every store enforces it
	// (sqlite ships with foreign keys off), so delete the lines explicitly.
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Deleted order #%d (paid=%t)", order.ID, order.Paid())
	c.Status(http.StatusNoContent)
}
