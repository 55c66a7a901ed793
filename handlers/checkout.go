package handlers

import (
	"net/http"

	"restaurant-client/middleware"
	"restaurant-client/models"
	"restaurant-client/ordering"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	TableID uint `json:"table_id"`
}

// Checkout submits the pending cart. With no active order it creates one on
// the requested table; with an active order it sends the new items to the
// kitchen. On success the cart is empty and the response carries the fresh
// server-side order.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := middleware.GetSession(c)

	opts := ordering.SubmitOptions{}
	if req.TableID > 0 {
		opts.TargetTable = &models.Table{ID: req.TableID}
	}

	view, err := h.Coordinator.Submit(c.Request.Context(), sess, opts)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Order sent to the kitchen",
		"order":       view.Order,
		"table":       view.Table,
		"cart":        []models.CartItem{},
		"grand_total": view.GrandTotal(0),
	})
}

type ChangeTableRequest struct {
	TableID uint `json:"table_id" binding:"required"`
}

// ChangeTable moves the active order to another table. The backend rejects a
// double-booking; its message is passed through untouched.
func (h *Handler) ChangeTable(c *gin.Context) {
	var req ChangeTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := middleware.GetSession(c)

	if _, ok, err := h.Resolver.ActiveOrderID(sess.ID); err != nil {
		renderError(c, err)
		return
	} else if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active order to move"})
		return
	}

	view, err := h.Coordinator.Submit(c.Request.Context(), sess, ordering.SubmitOptions{
		ChangeTable: true,
		TargetTable: &models.Table{ID: req.TableID},
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Table changed",
		"order":   view.Order,
		"table":   view.Table,
	})
}

type PayRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

// Pay finalizes the order and closes out the local session state
func (h *Handler) Pay(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentCash
	}
	sess := middleware.GetSession(c)

	if err := h.Payments.Pay(c.Request.Context(), sess, id, req.PaymentMethod); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Payment completed, thank you!",
		"order_id": id,
		"cart":     h.Carts.Items(sess.ID),
	})
}
