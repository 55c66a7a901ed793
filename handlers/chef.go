package handlers

import (
	"net/http"

	"restaurant-client/middleware"
	"restaurant-client/models"
	"restaurant-client/statemachine"

	"github.com/gin-gonic/gin"
)

// ChefOrders returns the kitchen queue with the actions the chef may take
// on each order, plus a per-status summary for the dashboard header
func (h *Handler) ChefOrders(c *gin.Context) {
	sess := middleware.GetSession(c)

	orders, err := h.Backend.ListOrders(c.Request.Context(), sess.Token)
	if err != nil {
		renderError(c, err)
		return
	}

	summary := map[string]int{}
	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		summary[string(o.Status)]++
		out = append(out, gin.H{
			"order":     o,
			"can_take":  statemachine.CanTransition(o.Status, models.StatusCooking, "chef") == nil,
			"can_ready": statemachine.CanTransition(o.Status, models.StatusReady, "chef") == nil,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        out,
	})
}

// TakeOrder accepts a pending order into the kitchen
func (h *Handler) TakeOrder(c *gin.Context) {
	h.chefTransition(c, models.StatusCooking, func(sess string, id uint) error {
		return h.Backend.TakeOrder(c.Request.Context(), sess, id)
	})
}

// ReadyOrder marks a cooking order as done
func (h *Handler) ReadyOrder(c *gin.Context) {
	h.chefTransition(c, models.StatusReady, func(sess string, id uint) error {
		return h.Backend.ReadyOrder(c.Request.Context(), sess, id)
	})
}

func (h *Handler) chefTransition(c *gin.Context, to models.OrderStatus, call func(token string, id uint) error) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.GetSession(c)

	order, err := h.Backend.GetOrder(c.Request.Context(), sess.Token, id)
	if err != nil {
		renderError(c, err)
		return
	}

	if err := statemachine.CanTransition(order.Status, to, "chef"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         to,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	if err := call(sess.Token, id); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        id,
		"previous_status": order.Status,
		"current_status":  to,
	})
}
