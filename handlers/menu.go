package handlers

import (
	"net/http"
	"strconv"

	"restaurant-client/backend"
	"restaurant-client/middleware"

	"github.com/gin-gonic/gin"
)

// ListDishes browses the catalog with the backend's filter/sort/pagination
// query parameters passed through
func (h *Handler) ListDishes(c *gin.Context) {
	filter := backend.DishFilter{
		Query:      c.Query("q"),
		CategoryID: uintQuery(c, "category_id"),
		ChefID:     uintQuery(c, "chef_id"),
		MinPrice:   int64Query(c, "min_price"),
		MaxPrice:   int64Query(c, "max_price"),
		MinPrepare: intQuery(c, "min_prepare"),
		MaxPrepare: intQuery(c, "max_prepare"),
		Ordering:   c.Query("ordering"),
		Page:       intQuery(c, "page"),
	}

	page, err := h.Backend.ListDishes(c.Request.Context(), filter)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    page.Count,
		"next":     page.Next,
		"previous": page.Previous,
		"dishes":   page.Results,
	})
}

// GetDish returns a single dish with its reviews
func (h *Handler) GetDish(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	dish, err := h.Backend.GetDish(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	// reviews are decorative here; a failure must not hide the dish
	reviews, err := h.Backend.ListReviews(c.Request.Context(), id)
	if err != nil {
		reviews = nil
	}

	c.JSON(http.StatusOK, gin.H{"dish": dish, "reviews": reviews})
}

// ListCategories returns the catalog's category reference data
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Backend.ListCategories(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

type CompareRequest struct {
	DishIDs []uint `json:"dish_ids" binding:"required,min=2"`
}

// CompareDishes returns side-by-side dish records
func (h *Handler) CompareDishes(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dishes, err := h.Backend.CompareDishes(c.Request.Context(), req.DishIDs)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dishes": dishes})
}

// LikeDish toggles the caller's like on a dish
func (h *Handler) LikeDish(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.GetSession(c)

	detail, err := h.Backend.LikeDish(c.Request.Context(), sess.Token, id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": detail})
}

// ListReviews returns a dish's reviews (public)
func (h *Handler) ListReviews(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	reviews, err := h.Backend.ListReviews(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

type ReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// CreateReview posts a review on a dish
func (h *Handler) CreateReview(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := middleware.GetSession(c)

	review, err := h.Backend.CreateReview(c.Request.Context(), sess.Token, id, backend.ReviewRequest{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review posted", "review": review})
}

// DeleteReview removes the caller's own review
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	sess := middleware.GetSession(c)

	if err := h.Backend.DeleteReview(c.Request.Context(), sess.Token, id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

func uintQuery(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Query(name), 10, 32)
	return uint(v)
}

func intQuery(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

func int64Query(c *gin.Context, name string) int64 {
	v, _ := strconv.ParseInt(c.Query(name), 10, 64)
	return v
}
