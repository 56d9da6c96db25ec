package app

import (
	"context"
	"errors"
	"strings"

	"quotevault/internal/model"
	"quotevault/internal/repository"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrNoQuotesInCategory = errors.New("no quotes found for this category")
	ErrNoQuotes           = errors.New("no quotes found in database")
)

type QuoteService struct {
	quotes repository.QuoteRepository
}

func NewQuoteService(quotes repository.QuoteRepository) *QuoteService {
	return &QuoteService{quotes: quotes}
}

func (s *QuoteService) All(ctx context.Context) ([]model.Quote, error) {
	return s.quotes.All(ctx)
}

func (s *QuoteService) ByID(ctx context.Context, id int64) (*model.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrQuoteNotFound
	}
	return quote, nil
}

// ByCategory matches case-insensitively; categories are stored lowercased.
func (s *QuoteService) ByCategory(ctx context.Context, category string) ([]model.Quote, error) {
	quotes, err := s.quotes.ByCategory(ctx, strings.ToLower(strings.TrimSpace(category)))
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, ErrNoQuotesInCategory
	}
	return quotes, nil
}

func (s *QuoteService) Random(ctx context.Context) (*model.Quote, error) {
	quote, err := s.quotes.Random(ctx)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrNoQuotes
	}
	return quote, nil
}
