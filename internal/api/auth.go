package api

import (
	"net/http" // HTTP status codes

	"prd_manager/internal/apperror"
	"prd_manager/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/sirupsen/logrus"
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterHandler creates a new user account
func RegisterHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperror.NewValidationError("Invalid request"))
			return
		}
		user, err := auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
		}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"user":    user,
		})
	}
}

// LoginHandler authenticates a user and returns a signed access token
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperror.NewValidationError("Invalid request"))
			return
		}
		if req.Username == "" || req.Password == "" {
			writeError(c, apperror.NewValidationError("Missing credentials"))
			return
		}
		user, token, err := auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"user":         user,
		})
	}
}

// MeHandler returns the authenticated user's record
func MeHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Set by the JWT middleware
		if !exists {
			writeError(c, apperror.NewUnauthorizedError("Unauthorized"))
			return
		}
		user, err := auth.GetUserByID(c.Request.Context(), userID.(uint))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
