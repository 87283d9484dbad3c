package intake

import (
	"fmt"

	"bookshop/internal/isbn"
)

// Condition is the physical state of a book copy. It is a closed enumeration;
// values only come from ParseCondition, so the multiplier table is total.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionAsNew   Condition = "as_new"
	ConditionDamaged Condition = "damaged"
)

func ParseCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionNew, ConditionAsNew, ConditionDamaged:
		return Condition(s), nil
	}
	return "", fmt.Errorf("unknown condition: %q", s)
}

// Multiplier returns the price factor for the condition.
func (c Condition) Multiplier() float64 {
	switch c {
	case ConditionNew:
		return 1.0
	case ConditionAsNew:
		return 0.8
	case ConditionDamaged:
		return 0.5
	}
	// Unreachable: Condition is only constructed by ParseCondition.
	return 0
}

// Lookup is the outcome of one external fetch: a value, or nothing. Transport
// failures, not-found answers and malformed bodies all collapse to absent.
type Lookup[T any] struct {
	Value   T
	Present bool
}

func Found[T any](v T) Lookup[T] {
	return Lookup[T]{Value: v, Present: true}
}

func Absent[T any]() Lookup[T] {
	return Lookup[T]{}
}

type Status string

const (
	StatusComplete    Status = "complete"
	StatusNeedsReview Status = "needs_review"
)

// Review reasons, one per combination of missing lookups.
const (
	ReasonMissingTitleAndPrice = "missing title and price"
	ReasonMissingTitle         = "missing title"
	ReasonNoPrice              = "no price"
)

// Entry is the result of one intake request.
type Entry struct {
	ISBN10    string    `json:"isbn10,omitempty"`
	ISBN13    string    `json:"isbn13"`
	Condition Condition `json:"condition"`
	Title     string    `json:"title,omitempty"`
	Price     *float64  `json:"price,omitempty"`
	Status    Status    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
}

// Decide combines the normalized identifier, the condition and the two lookup
// outcomes into a catalog entry. The condition multiplier is applied to the
// price exactly once, here. Status is complete only when both lookups are
// present; otherwise the reason names what is missing.
func Decide(id isbn.ISBN, condition Condition, price Lookup[float64], title Lookup[string]) Entry {
	entry := Entry{
		ISBN10:    id.ISBN10(),
		ISBN13:    id.ISBN13(),
		Condition: condition,
	}

	if price.Present {
		adjusted := price.Value * condition.Multiplier()
		entry.Price = &adjusted
	}
	if title.Present {
		entry.Title = title.Value
	}

	switch {
	case !price.Present && !title.Present:
		entry.Status = StatusNeedsReview
		entry.Reason = ReasonMissingTitleAndPrice
	case !title.Present:
		entry.Status = StatusNeedsReview
		entry.Reason = ReasonMissingTitle
	case !price.Present:
		entry.Status = StatusNeedsReview
		entry.Reason = ReasonNoPrice
	default:
		entry.Status = StatusComplete
	}
	return entry
}
