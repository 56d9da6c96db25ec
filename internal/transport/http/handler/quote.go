package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quotevault/internal/app"
	"quotevault/internal/transport/http/middleware"
	"quotevault/internal/transport/http/response"
)

type QuoteHandler struct {
	quotes    *app.QuoteService
	favorites *app.FavoriteService
	dev       bool
}

func NewQuoteHandler(quotes *app.QuoteService, favorites *app.FavoriteService, dev bool) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, favorites: favorites, dev: dev}
}

func (h *QuoteHandler) All(c *gin.Context) {
	quotes, err := h.quotes.All(c.Request.Context())
	if err != nil {
		log.Printf("list quotes failed: %v", err)
		response.Internal(c, "failed to get quotes", err, h.dev)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"count": len(quotes),
		"data":  quotes,
	})
}

func (h *QuoteHandler) Random(c *gin.Context) {
	quote, err := h.quotes.Random(c.Request.Context())
	if err != nil {
		if errors.Is(err, app.ErrNoQuotes) {
			response.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("random quote failed: %v", err)
		response.Internal(c, "failed to get random quote", err, h.dev)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"data": quote})
}

// ByID runs behind optional auth: with a verified identity the reply also
// says whether the quote is in that user's favorites.
func (h *QuoteHandler) ByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusNotFound, app.ErrQuoteNotFound.Error())
		return
	}

	quote, err := h.quotes.ByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app.ErrQuoteNotFound) {
			response.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("get quote failed: %v", err)
		response.Internal(c, "failed to get quote", err, h.dev)
		return
	}

	payload := gin.H{"data": quote}
	if userID, ok := middleware.UserID(c); ok {
		isFavorite, err := h.favorites.IsFavorite(c.Request.Context(), userID, c.Param("id"))
		if err == nil {
			payload["is_favorite"] = isFavorite
		}
	}

	response.OK(c, http.StatusOK, payload)
}

func (h *QuoteHandler) ByCategory(c *gin.Context) {
	quotes, err := h.quotes.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		if errors.Is(err, app.ErrNoQuotesInCategory) {
			response.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("quotes by category failed: %v", err)
		response.Internal(c, "failed to get quotes by category", err, h.dev)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"count": len(quotes),
		"data":  quotes,
	})
}
