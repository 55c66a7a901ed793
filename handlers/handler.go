package handlers

import (
	"errors"
	"net/http"

	"restaurant-client/backend"
	"restaurant-client/cart"
	"restaurant-client/ordering"
	"restaurant-client/storage"

	"github.com/gin-gonic/gin"
)

// Handler carries the injected collaborators every endpoint needs: the
// backend REST client, the per-session cart store, the reconciliation core
// and the device-local store. No ambient globals.
type Handler struct {
	Backend     *backend.Client
	Carts       *cart.Store
	Resolver    *ordering.Resolver
	Coordinator *ordering.Coordinator
	Payments    *ordering.Payments
	KV          *storage.KV
}

func New(bc *backend.Client, carts *cart.Store, kv *storage.KV) *Handler {
	resolver := ordering.NewResolver(kv, bc, bc)
	return &Handler{
		Backend:     bc,
		Carts:       carts,
		Resolver:    resolver,
		Coordinator: ordering.NewCoordinator(kv, bc, carts, resolver),
		Payments:    ordering.NewPayments(kv, bc),
		KV:          kv,
	}
}

// renderError maps core/backend errors onto HTTP responses. Conflict
// messages pass through verbatim; transport and server failures collapse to
// a generic message so raw errors never reach the UI.
func renderError(c *gin.Context, err error) {
	var conflict *backend.TableConflictError
	var rejected *backend.RequestError
	var userErr *ordering.UserError

	switch {
	case errors.Is(err, ordering.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
	case errors.Is(err, ordering.ErrNoTable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a table"})
	case errors.Is(err, backend.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, backend.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
	case errors.As(err, &rejected):
		c.JSON(rejected.StatusCode, gin.H{"error": rejected.Message})
	case errors.As(err, &userErr):
		switch {
		case errors.As(userErr.Err, &conflict):
			c.JSON(http.StatusConflict, gin.H{"error": userErr.Message})
		case errors.As(userErr.Err, &rejected):
			c.JSON(rejected.StatusCode, gin.H{"error": userErr.Message})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": userErr.Message})
		}
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Operation failed"})
	}
}
