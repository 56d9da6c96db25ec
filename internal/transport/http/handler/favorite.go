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

type FavoriteHandler struct {
	favorites *app.FavoriteService
	dev       bool
}

func NewFavoriteHandler(favorites *app.FavoriteService, dev bool) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, dev: dev}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, app.ErrInvalidUserID) {
			response.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("list favorites failed: %v", err)
		response.Internal(c, "failed to get favorites", err, h.dev)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"favorites": favorites})
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	err := h.favorites.Add(c.Request.Context(), userID, c.Param("quoteId"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidUserID), errors.Is(err, app.ErrInvalidQuoteID):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrAlreadyFavorite):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("add favorite failed: %v", err)
			response.Internal(c, "failed to add to favorites", err, h.dev)
		}
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"message": "Quote added to favorites"})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	err := h.favorites.Remove(c.Request.Context(), userID, c.Param("quoteId"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidUserID), errors.Is(err, app.ErrInvalidQuoteID):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrNotFavorite):
			response.Fail(c, http.StatusNotFound, err.Error())
		default:
			log.Printf("remove favorite failed: %v", err)
			response.Internal(c, "failed to remove from favorites", err, h.dev)
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "Quote removed from favorites"})
}

func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	isFavorite, err := h.favorites.IsFavorite(c.Request.Context(), userID, c.Param("quoteId"))
	if err != nil {
		log.Printf("check favorite failed: %v", err)
		response.Internal(c, "failed to check favorite", err, h.dev)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"is_favorite": isFavorite})
}
