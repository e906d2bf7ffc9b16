package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cornerstore/backend/database"
	"github.com/cornerstore/backend/middlewares"
	"github.com/cornerstore/backend/models"
	"github.com/cornerstore/backend/router"
	"github.com/cornerstore/backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB -> migrate the schema into in-memory sqlite and load the
// store fixtures
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Cashier{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	utils.InitDB(db)
	return db
}

func doJSON(t *testing.T, r http.Handler, method, url string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// TestEndToEndIntegration drives the seeded store through the main flows:
// browse and search products, check the popularity report, look up a
// cashier, ring up a new order and delete it again.
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB()
	r := router.SetupRouter(db, middlewares.NewRateLimiter(100, 100))

	// health
	w, _ := doJSON(t, r, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// all six seeded products
	w, resp := doJSON(t, r, "GET", "/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"].([]interface{}), 6)

	// "soda" only matches through the category name
	w, resp = doJSON(t, r, "GET", "/products?search=soda", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	products := resp["data"].([]interface{})
	assert.Len(t, products, 1)
	assert.Equal(t, "Coca-Cola", products[0].(map[string]interface{})["product_name"])

	// six distinct products ordered, default report caps at five
	w, resp = doJSON(t, r, "GET", "/products/popular", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	popular := resp["data"].([]interface{})
	assert.Len(t, popular, 5)
	top := popular[0].(map[string]interface{})
	assert.Equal(t, "M&Ms", top["product_name"])
	assert.Equal(t, 5.0, top["total_quantity"])

	// cashier detail with their orders
	w, resp = doJSON(t, r, "GET", "/cashiers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cashier := resp["data"].(map[string]interface{})
	assert.Equal(t, "TylerParker", cashier["full_name"])
	assert.Len(t, cashier["orders"].([]interface{}), 2)

	// ring up a new order
	w, resp = doJSON(t, r, "POST", "/orders", map[string]interface{}{
		"cashier_id": 2,
		"order_products": []map[string]interface{}{
			{"product_id": 1, "quantity": 3},
			{"product_id": 6, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	order := resp["data"].(map[string]interface{})
	assert.Equal(t, 9.5, order["total"])
	orderID := int(order["id"].(float64))

	// the new quantities show up in the report
	w, resp = doJSON(t, r, "GET", "/products/popular?amount=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	popular = resp["data"].([]interface{})
	assert.Len(t, popular, 6)
	top = popular[0].(map[string]interface{})
	assert.Equal(t, "Coca-Cola", top["product_name"])
	assert.Equal(t, 7.0, top["total_quantity"])

	// and the order can be deleted again, lines included
	req, _ := http.NewRequest("DELETE", "/orders/"+strconv.Itoa(orderID), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var lineCount int64
	db.Model(&models.OrderProduct{}).Where("order_id = ?", orderID).Count(&lineCount)
	assert.Equal(t, int64(0), lineCount)
}

// TestRateLimiterShedsBursts makes sure the limiter sits in front of the
// registered routes, not behind them.
func TestRateLimiterShedsBursts(t *testing.T) {
	db := setupTestDB()
	r := router.SetupRouter(db, middlewares.NewRateLimiter(1, 1))

	w, _ := doJSON(t, r, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// an immediate second request from the same client exceeds the burst
	w, _ = doJSON(t, r, "GET", "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
