package handlers

import (
	"net/http"

	"restaurant-client/cart"
	"restaurant-client/middleware"

	"github.com/gin-gonic/gin"
)

// GetCart renders the merged cart view: the authoritative active order (if
// any), the table derived from it, the selectable tables, the pending local
// items and the grand total across both.
func (h *Handler) GetCart(c *gin.Context) {
	sess := middleware.GetSession(c)

	view, err := h.Resolver.Resolve(c.Request.Context(), sess)
	if err != nil {
		renderError(c, err)
		return
	}

	items := h.Carts.Items(sess.ID)
	cartTotal := cart.Total(items)

	c.JSON(http.StatusOK, gin.H{
		"order":       view.Order,
		"table":       view.Table,
		"tables":      view.Tables,
		"cart":        items,
		"cart_total":  cartTotal,
		"grand_total": view.GrandTotal(cartTotal),
	})
}

type AddItemRequest struct {
	DishID uint `json:"dish_id" binding:"required"`
}

// AddItem puts a dish into the cart with quantity 1. Adding a dish that is
// already present changes nothing.
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := middleware.GetSession(c)

	dish, err := h.Backend.GetDish(c.Request.Context(), req.DishID)
	if err != nil {
		renderError(c, err)
		return
	}

	items := h.Carts.Dispatch(sess.ID, cart.Add(*dish))
	c.JSON(http.StatusOK, gin.H{"cart": items, "cart_total": cart.Total(items)})
}

// RemoveItem drops a line from the cart
func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := uintParam(c, "dishId")
	if !ok {
		return
	}
	sess := middleware.GetSession(c)
	items := h.Carts.Dispatch(sess.ID, cart.Remove(id))
	c.JSON(http.StatusOK, gin.H{"cart": items, "cart_total": cart.Total(items)})
}

// IncrementItem bumps a line's quantity by one
func (h *Handler) IncrementItem(c *gin.Context) {
	id, ok := uintParam(c, "dishId")
	if !ok {
		return
	}
	sess := middleware.GetSession(c)
	items := h.Carts.Dispatch(sess.ID, cart.Increment(id))
	c.JSON(http.StatusOK, gin.H{"cart": items, "cart_total": cart.Total(items)})
}

// DecrementItem lowers a line's quantity, stopping at one
func (h *Handler) DecrementItem(c *gin.Context) {
	id, ok := uintParam(c, "dishId")
	if !ok {
		return
	}
	sess := middleware.GetSession(c)
	items := h.Carts.Dispatch(sess.ID, cart.Decrement(id))
	c.JSON(http.StatusOK, gin.H{"cart": items, "cart_total": cart.Total(items)})
}

// ClearCart empties the pending selection
func (h *Handler) ClearCart(c *gin.Context) {
	sess := middleware.GetSession(c)
	h.Carts.Clear(sess.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
