package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/backend/models"
	"github.com/cornerstore/backend/services"
	"github.com/cornerstore/backend/utils"
)

type ProductController struct {
	DB  *gorm.DB
	svc *services.ProductService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db, svc: services.NewProductService(db)}
}

// GetAllProducts -> all products, or, with ?search=, the products whose
// name or category name contains the term (case-insensitive)
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	query := pc.DB.Model(&models.Product{}).Preload("Category")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("LOWER(products.name) LIKE ? OR LOWER(categories.name) LIKE ?", pattern, pattern)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]models.ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, models.NewProductDTO(p, true))
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", dtos)
}

// CreateProduct
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var body struct {
		Name       string  `json:"product_name" binding:"required"`
		Price      float64 `json:"price" binding:"min=0"`
		Brand      string  `json:"brand" binding:"required"`
		CategoryID uint    `json:"category_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := pc.DB.First(&category, body.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown category_id"))
		return
	}

	product := models.Product{
		Name:       body.Name,
		Price:      utils.RoundPrice(body.Price),
		Brand:      body.Brand,
		CategoryID: body.CategoryID,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	product.Category = category
	c.Header("Location", fmt.Sprintf("/products/%d", product.ID))
	utils.RespondJSON(c, http.StatusCreated, "Product created", models.NewProductDTO(product, true))
}

// UpdateProduct -> partial update; only fields present in the payload are
// written, everything else keeps its stored value
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	idStr := c.Param("product_id")
	id, _ := strconv.Atoi(idStr)

	var patch services.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	// a re-categorization has to point at an existing category, same as on
	// create
	if patch.CategoryID != nil {
		var category models.Category
		if err := pc.DB.First(&category, *patch.CategoryID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown category_id"))
			return
		}
	}

	pc.svc.ApplyPatch(&product, patch)
	product.Price = utils.RoundPrice(product.Price)

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPopularProducts -> products ranked by total ordered quantity
// Endpoint: GET /products/popular?amount=<n> (default 5)
func (pc *ProductController) GetPopularProducts(c *gin.Context) {
	amount := services.DefaultPopularAmount
	if amountStr := c.Query("amount"); amountStr != "" {
		parsed, err := strconv.Atoi(amountStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid amount"))
			return
		}
		amount = parsed
	}

	popular, err := pc.svc.PopularProducts(amount)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Popular products", popular)
}
