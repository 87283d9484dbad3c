// Package pricing is the internal price source. Its heuristic derives a
// deterministic pseudo-price from the ISBN and stands in for a real pricing
// backend; roughly half of all ISBNs price as not found.
package pricing

import (
	"math"
	"sync"
)

const (
	maxHash  = 741
	priceMin = 10
	priceMax = 5000
)

// Service prices ISBNs and memoizes each answer for the process lifetime.
// The memo is never evicted; concurrent writers racing on the same ISBN
// compute the same value, so last write wins is fine.
type Service struct {
	mu   sync.RWMutex
	memo map[string]float64
}

func NewService() *Service {
	return &Service{memo: make(map[string]float64)}
}

// PriceFor returns the price for an ISBN, or false when the source has no
// price for it. Same ISBN, same answer for the lifetime of the process.
func (s *Service) PriceFor(isbn string) (float64, bool) {
	h := hash(isbn)
	if h%100 >= 50 {
		return 0, false
	}

	s.mu.RLock()
	price, ok := s.memo[isbn]
	s.mu.RUnlock()
	if ok {
		return price, true
	}

	price = math.Round(float64(h)/maxHash*(priceMax-priceMin) + priceMin)

	s.mu.Lock()
	s.memo[isbn] = price
	s.mu.Unlock()
	return price, true
}

func hash(isbn string) int {
	sum := 0
	for _, b := range []byte(isbn) {
		sum += int(b)
	}
	return sum
}
