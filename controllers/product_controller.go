package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockroomhq/stockroom-api/models"
	"github.com/stockroomhq/stockroom-api/services"
	"github.com/stockroomhq/stockroom-api/store"
	"github.com/stockroomhq/stockroom-api/utils"
)

// ListProducts handles GET /api/products - lists the catalog, optionally
// filtered by a substring query (q) and an exact category (category).
// Both filters combine with AND semantics.
func ListProducts(c *gin.Context) {
	doc, err := store.Get().Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	q := c.Query("q")
	category := c.Query("category")

	matches := []models.Product{}
	for _, p := range doc.Products {
		if p.Matches(q) && p.InCategory(category) {
			matches = append(matches, p)
		}
	}

	c.JSON(http.StatusOK, matches)
}

// GetProduct handles GET /api/products/:id
func GetProduct(c *gin.Context) {
	doc, err := store.Get().Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	product := doc.FindProduct(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/admin/product - registers a product from
// a multipart form (name, price, warrantyMonths, category, initialStock)
// with an optional image file. Numeric fields default to 0 when absent or
// unparseable.
func CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	category := strings.TrimSpace(c.PostForm("category"))
	if category == "" {
		category = models.DefaultCategory
	}

	image := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		storedName, upErr := services.UploadImage(fileHeader)
		if upErr != nil {
			var uploadErr *utils.FileUploadError
			if errors.As(upErr, &uploadErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": uploadErr.Message})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			}
			return
		}
		image = utils.ImageURL(storedName)
	}

	doc, err := store.Get().Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	product := models.Product{
		ID:             utils.NewID("prod_"),
		Name:           name,
		Price:          utils.ParsePriceOrZero(c.PostForm("price")),
		WarrantyMonths: utils.ParseIntOrZero(c.PostForm("warrantyMonths")),
		Category:       category,
		Stock:          utils.ParseIntOrZero(c.PostForm("initialStock")),
		Image:          image,
		CreatedAt:      time.Now().UTC(),
	}
	doc.Products = append(doc.Products, product)

	if err := store.Get().Save(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// AdjustStockRequest is the request body for stock adjustments. The delta
// may be negative; it is not validated against driving stock below zero
// (only order approval enforces the stock invariant).
type AdjustStockRequest struct {
	ProductID   string      `json:"productId"`
	AddQuantity interface{} `json:"addQuantity"`
}

// AdjustStock handles POST /api/admin/stock
func AdjustStock(c *gin.Context) {
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	doc, err := store.Get().Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	product := doc.FindProduct(req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	product.Stock += utils.CoerceInt(req.AddQuantity)

	if err := store.Get().Save(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		return
	}

	c.JSON(http.StatusOK, product)
}
