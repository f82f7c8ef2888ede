package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockroomhq/stockroom-api/models"
	"github.com/stockroomhq/stockroom-api/store"
	"github.com/stockroomhq/stockroom-api/utils"
)

// CreateOrderRequest is the request body for placing an order
type CreateOrderRequest struct {
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	ProductID    string      `json:"productId"`
	Quantity     interface{} `json:"quantity"`
	SerialNumber string      `json:"serialNumber"`
}

// OrderWithProduct is an order joined with its referenced product for
// admin display. Product is null when the reference dangles.
type OrderWithProduct struct {
	models.Order
	Product *models.Product `json:"product"`
}

// CreateOrder handles POST /api/orders - places a customer order in
// PENDING state. Stock is checked here but not reserved; it is only
// decremented at approval time.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	quantity := utils.CoerceInt(req.Quantity)
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.ProductID) == "" ||
		quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
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

	if product.Stock < quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock"})
		return
	}

	order := models.Order{
		ID:           utils.NewID("ord_"),
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		ProductID:    req.ProductID,
		Quantity:     quantity,
		SerialNumber: strings.TrimSpace(req.SerialNumber),
		Status:       models.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	doc.Orders = append(doc.Orders, order)

	if err := store.Get().Save(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/admin/orders - lists orders with their
// referenced product embedded, optionally filtered by exact status
func ListOrders(c *gin.Context) {
	doc, err := store.Get().Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	status := c.Query("status")

	orders := []OrderWithProduct{}
	for _, o := range doc.Orders {
		if status != "" && string(o.Status) != status {
			continue
		}
		view := OrderWithProduct{Order: o}
		if p := doc.FindProduct(o.ProductID); p != nil {
			product := *p
			view.Product = &product
		}
		orders = append(orders, view)
	}

	c.JSON(http.StatusOK, orders)
}

// ApproveOrder handles POST /api/admin/orders/:id/approve - transitions a
// PENDING order to APPROVED, decrements product stock and stamps the
// warranty expiry. Stock is re-validated here, closing the window left
// open at order creation.
func ApproveOrder(c *gin.Context) {
	doc, err := store.Get().Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	order := doc.FindOrder(c.Param("id"))
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	product := doc.FindProduct(order.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if order.Status.Terminal() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is not pending"})
		return
	}

	if product.Stock < order.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock"})
		return
	}

	now := time.Now().UTC()
	product.Stock -= order.Quantity
	order.Status = models.StatusApproved
	order.ApprovedAt = &now
	order.WarrantyExpiry = models.WarrantyExpiry(now, product.WarrantyMonths)

	if err := store.Get().Save(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// RejectOrder handles POST /api/admin/orders/:id/reject. Unlike approval
// there is no pending-state guard: rejecting an already-terminal order
// succeeds and restamps rejectedAt.
func RejectOrder(c *gin.Context) {
	doc, err := store.Get().Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	order := doc.FindOrder(c.Param("id"))
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	now := time.Now().UTC()
	order.Status = models.StatusRejected
	order.RejectedAt = &now

	if err := store.Get().Save(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		return
	}

	c.JSON(http.StatusOK, order)
}
