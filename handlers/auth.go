package handlers

import (
	"net/http"

	"restaurant-client/backend"
	"restaurant-client/middleware"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new customer account on the backend
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Backend.Register(c.Request.Context(), backend.RegisterRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully, please log in",
		"user":    user,
	})
}

// Login exchanges credentials for a backend access token, opens a device
// session around it, and returns the session JWT. The access token stays in
// the local store; only the session token travels to the browser.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tok, err := h.Backend.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	user, err := h.Backend.CurrentUser(c.Request.Context(), tok.AccessToken)
	if err != nil {
		renderError(c, err)
		return
	}

	sessionID, sessionToken, err := middleware.NewSessionToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	if err := h.KV.Set(middleware.TokenKey(sessionID), tok.AccessToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   sessionToken,
		"user":    user,
	})
}

// Logout drops the device session: backend token and any session pointer
func (h *Handler) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	if err := h.KV.Remove(middleware.TokenKey(sess.ID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}
	_ = h.KV.Remove("active_order:" + sess.ID)
	h.Carts.Clear(sess.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the backend's view of the authenticated user
func (h *Handler) GetProfile(c *gin.Context) {
	sess := middleware.GetSession(c)
	user, err := h.Backend.CurrentUser(c.Request.Context(), sess.Token)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UpdateProfile patches the current user on the backend
func (h *Handler) UpdateProfile(c *gin.Context) {
	sess := middleware.GetSession(c)
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Backend.UpdateCurrentUser(c.Request.Context(), sess.Token, backend.UpdateProfileRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}
