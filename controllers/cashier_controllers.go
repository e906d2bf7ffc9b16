package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/backend/models"
	"github.com/cornerstore/backend/utils"
)

type CashierController struct {
	DB *gorm.DB
}

func NewCashierController(db *gorm.DB) *CashierController {
	return &CashierController{DB: db}
}

// GetCashierByID -> cashier detail with orders, line items and products
func (cc *CashierController) GetCashierByID(c *gin.Context) {
	idStr := c.Param("cashier_id")
	id, _ := strconv.Atoi(idStr)

	var cashier models.Cashier
	if err := cc.DB.
		Preload("Orders.OrderProducts.Product").
		First(&cashier, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cashier detail", models.NewCashierDTO(cashier))
}

// CreateCashier
func (cc *CashierController) CreateCashier(c *gin.Context) {
	var body struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cashier := models.Cashier{
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	if err := cc.DB.Create(&cashier).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/cashiers/%d", cashier.ID))
	utils.RespondJSON(c, http.StatusCreated, "Cashier created", models.NewCashierDTO(cashier))
}
