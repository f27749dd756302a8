package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"freelance-dashboard/internal/app"
	"freelance-dashboard/internal/repository"
	"freelance-dashboard/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

// Length and charset rules live in the validator so failures carry the exact
// client-facing messages; binding only rejects malformed JSON.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(app.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		IP:       c.ClientIP(),
	})
	if err != nil {
		var vErr *app.ValidationError
		var dupErr *repository.DuplicateKeyError
		switch {
		case errors.As(err, &vErr):
			response.Msg(c, http.StatusBadRequest, vErr.Error())
		case errors.As(err, &dupErr):
			response.Msg(c, http.StatusBadRequest, dupErr.Error())
		default:
			log.Printf("registration error: %v", err)
			response.Err(c, http.StatusInternalServerError, "Internal server error during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg": "User registered successfully",
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"createdAt": user.CreatedAt,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
		IP:         c.ClientIP(),
	})
	if err != nil {
		var vErr *app.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.Msg(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, app.ErrInvalidCredentials):
			// Identical payload for unknown user and wrong password.
			response.Msg(c, http.StatusBadRequest, "Invalid credentials")
		default:
			log.Printf("login error: %v", err)
			response.Err(c, http.StatusInternalServerError, "Internal server error during login")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "Login successful",
		"token": result.Token,
		"user":  result.User.PublicProfile(),
	})
}
