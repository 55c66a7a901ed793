package handlers

import (
	"net/http"

	"restaurant-client/middleware"
	"restaurant-client/models"
	"restaurant-client/statemachine"

	"github.com/gin-gonic/gin"
)

// OrderHistory returns the caller's past and current orders
func (h *Handler) OrderHistory(c *gin.Context) {
	sess := middleware.GetSession(c)

	orders, err := h.Backend.ListOrders(c.Request.Context(), sess.Token)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// CancelOrder cancels one of the caller's orders. The local state machine
// rejects transitions the backend would refuse anyway, so an obviously
// invalid cancel never costs a network round trip.
func (h *Handler) CancelOrder(c *gin.Context) {
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

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "customer"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	if err := h.Backend.CancelOrder(c.Request.Context(), sess.Token, id); err != nil {
		renderError(c, err)
		return
	}

	// the cancelled order is terminal; drop a pointer that references it
	if active, ok, _ := h.Resolver.ActiveOrderID(sess.ID); ok && active == id {
		_ = h.KV.Remove("active_order:" + sess.ID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": id})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
		"description":     "Dine-in Order Lifecycle State Machine",
	})
}
