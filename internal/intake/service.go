package intake

import (
	"context"
	"sync"

	"bookshop/internal/isbn"
)

// PriceSource looks up a base price by canonical ISBN-13. Implementations
// must absorb transport failures and answer absent instead of erroring.
type PriceSource interface {
	LookupPrice(ctx context.Context, isbn13 string) Lookup[float64]
}

// TitleSource looks up a title by canonical ISBN-13 under the same contract.
type TitleSource interface {
	LookupTitle(ctx context.Context, isbn13 string) Lookup[string]
}

type Service struct {
	prices PriceSource
	titles TitleSource
}

func NewService(prices PriceSource, titles TitleSource) *Service {
	return &Service{prices: prices, titles: titles}
}

// AddBook validates the raw identifier, runs the two independent lookups and
// returns the intake decision. The only error is an invalid identifier
// (isbn.InvalidError); lookup absence is reported through the entry status.
func (s *Service) AddBook(ctx context.Context, rawISBN string, condition Condition) (Entry, error) {
	id, err := isbn.Parse(rawISBN)
	if err != nil {
		return Entry{}, err
	}

	// The lookups are independent, so issue them concurrently and join
	// before deciding.
	var (
		wg    sync.WaitGroup
		price Lookup[float64]
		title Lookup[string]
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		price = s.prices.LookupPrice(ctx, id.ISBN13())
	}()
	go func() {
		defer wg.Done()
		title = s.titles.LookupTitle(ctx, id.ISBN13())
	}()
	wg.Wait()

	return Decide(id, condition, price, title), nil
}
