package intake

import (
	"context"
	"errors"
	"log"

	"bookshop/internal/platform/openlibrary"
	"bookshop/internal/platform/priceclient"
)

// EditionFetcher is the slice of the Open Library client the title gateway
// needs.
type EditionFetcher interface {
	GetEditionByISBN(ctx context.Context, isbn13 string) (*openlibrary.Edition, error)
}

// PriceFetcher is the slice of the price API client the price gateway needs.
type PriceFetcher interface {
	GetPrice(ctx context.Context, isbn13 string) (float64, error)
}

// OpenLibraryTitles adapts the Open Library client to TitleSource. Every
// failure mode, including transport errors and malformed bodies, collapses
// to an absent lookup; intake never sees an error from here.
type OpenLibraryTitles struct {
	client EditionFetcher
}

func NewOpenLibraryTitles(client EditionFetcher) *OpenLibraryTitles {
	return &OpenLibraryTitles{client: client}
}

func (g *OpenLibraryTitles) LookupTitle(ctx context.Context, isbn13 string) Lookup[string] {
	ed, err := g.client.GetEditionByISBN(ctx, isbn13)
	if err != nil {
		if !errors.Is(err, openlibrary.ErrNotFound) {
			log.Printf("title lookup failed isbn=%s err=%v", isbn13, err)
		}
		return Absent[string]()
	}
	if ed.Title == "" {
		return Absent[string]()
	}
	return Found(ed.Title)
}

// PriceAPISource adapts the price API client to PriceSource under the same
// absorb-everything contract.
type PriceAPISource struct {
	client PriceFetcher
}

func NewPriceAPISource(client PriceFetcher) *PriceAPISource {
	return &PriceAPISource{client: client}
}

func (g *PriceAPISource) LookupPrice(ctx context.Context, isbn13 string) Lookup[float64] {
	price, err := g.client.GetPrice(ctx, isbn13)
	if err != nil {
		if !errors.Is(err, priceclient.ErrNotFound) {
			log.Printf("price lookup failed isbn=%s err=%v", isbn13, err)
		}
		return Absent[float64]()
	}
	return Found(price)
}
