package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockroomhq/stockroom-api/models"
	"github.com/stockroomhq/stockroom-api/store"
)

// Search handles GET /api/search?q= - combined case-insensitive substring
// search over products (name/category) and orders (customer name/serial
// number). An empty query returns an empty array, not the two-collection
// shape.
func Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []interface{}{})
		return
	}

	doc, err := store.Get().Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	products := []models.Product{}
	for _, p := range doc.Products {
		if p.Matches(q) {
			products = append(products, p)
		}
	}

	orders := []models.Order{}
	for _, o := range doc.Orders {
		if o.Matches(q) {
			orders = append(orders, o)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"orders":   orders,
	})
}
