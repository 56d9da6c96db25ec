package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"quotevault/internal/app"
	"quotevault/internal/transport/http/middleware"
	"quotevault/internal/transport/http/response"
)

type AuthHandler struct {
	accounts *app.AccountService
	dev      bool
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

func NewAuthHandler(accounts *app.AccountService, dev bool) *AuthHandler {
	return &AuthHandler{accounts: accounts, dev: dev}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMissingFields),
			errors.Is(err, app.ErrInvalidEmail),
			errors.Is(err, app.ErrPasswordTooShort),
			errors.Is(err, app.ErrEmailExists):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("register failed: %v", err)
			response.Internal(c, "registration failed", err, h.dev)
		}
		return
	}

	response.OK(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    result.User,
		"token":   result.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, app.ErrInvalidCredential) {
			response.Fail(c, http.StatusUnauthorized, err.Error())
			return
		}
		log.Printf("login failed: %v", err)
		response.Internal(c, "login failed", err, h.dev)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	user, err := h.accounts.GetByID(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidUserID):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		default:
			log.Printf("fetch profile failed: %v", err)
			response.Internal(c, "failed to get profile", err, h.dev)
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Name == "" && req.Email == "" {
		response.Fail(c, http.StatusBadRequest, "no fields to update")
		return
	}

	userID, _ := middleware.UserID(c)
	if err := h.accounts.Update(c.Request.Context(), userID, req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidUserID),
			errors.Is(err, app.ErrInvalidEmail),
			errors.Is(err, app.ErrEmailTaken):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		default:
			log.Printf("update profile failed: %v", err)
			response.Internal(c, "failed to update profile", err, h.dev)
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *AuthHandler) DeleteProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.accounts.Delete(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidUserID):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		default:
			log.Printf("delete profile failed: %v", err)
			response.Internal(c, "failed to delete profile", err, h.dev)
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
