package routes

import (
	"restaurant-client/handlers"
	"restaurant-client/middleware"
	"restaurant-client/models"
	"restaurant-client/storage"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, kv *storage.KV) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Catalog (no auth needed)
		public.GET("/dishes", h.ListDishes)
		public.GET("/dishes/:id", h.GetDish)
		public.GET("/dishes/:id/reviews", h.ListReviews)
		public.POST("/dishes/compare", h.CompareDishes)
		public.GET("/categories", h.ListCategories)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(kv))
	{
		auth.GET("/profile", h.GetProfile)
		auth.PATCH("/profile", h.UpdateProfile)
		auth.POST("/auth/logout", h.Logout)
		auth.POST("/dishes/:id/like", h.LikeDish)
		auth.POST("/dishes/:id/reviews", h.CreateReview)
		auth.DELETE("/reviews/:id", h.DeleteReview)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(kv), middleware.RoleRequired(models.RoleCustomer, models.RoleAdmin))
	{
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart/items", h.AddItem)
		customer.DELETE("/cart/items/:dishId", h.RemoveItem)
		customer.PUT("/cart/items/:dishId/increment", h.IncrementItem)
		customer.PUT("/cart/items/:dishId/decrement", h.DecrementItem)
		customer.DELETE("/cart", h.ClearCart)

		// submission and payment are single-flight per session
		guarded := customer.Group("")
		guarded.Use(middleware.SingleFlight())
		{
			guarded.POST("/cart/checkout", h.Checkout)
			guarded.POST("/cart/table", h.ChangeTable)
			guarded.POST("/orders/:id/pay", h.Pay)
		}

		customer.GET("/orders", h.OrderHistory)
		customer.POST("/orders/:id/cancel", h.CancelOrder)
	}

	// ── Chef routes ────────────────────────────────────────────────
	chef := r.Group("/api/chef")
	chef.Use(middleware.AuthRequired(kv), middleware.RoleRequired(models.RoleChef))
	{
		chef.GET("/orders", h.ChefOrders)
		chef.POST("/orders/:id/take", h.TakeOrder)
		chef.POST("/orders/:id/ready", h.ReadyOrder)
	}
}
