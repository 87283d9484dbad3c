package isbn

import (
	"fmt"
	"strings"
)

// InvalidError reports a string that is not a valid ISBN-10 or ISBN-13.
type InvalidError struct {
	Raw string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid isbn: %q", e.Raw)
}

// ISBN holds both canonical forms of a validated book identifier.
// The zero value is not valid; use Parse.
type ISBN struct {
	isbn10 string
	isbn13 string
}

// Parse validates raw as an ISBN-10 or ISBN-13, with or without hyphen/space
// separators, and returns both canonical forms. ISBN-13s outside the 978
// prefix have no ISBN-10 equivalent; for those ISBN10 returns "".
func Parse(raw string) (ISBN, error) {
	clean := strings.ReplaceAll(raw, "-", "")
	clean = strings.ReplaceAll(clean, " ", "")

	switch len(clean) {
	case 10:
		if !valid10(clean) {
			return ISBN{}, &InvalidError{Raw: raw}
		}
		return ISBN{isbn10: clean, isbn13: to13(clean)}, nil
	case 13:
		if !valid13(clean) {
			return ISBN{}, &InvalidError{Raw: raw}
		}
		return ISBN{isbn10: to10(clean), isbn13: clean}, nil
	default:
		return ISBN{}, &InvalidError{Raw: raw}
	}
}

// ISBN10 returns the canonical short form, or "" when the identifier is a
// 979-prefixed ISBN-13 with no short equivalent.
func (i ISBN) ISBN10() string { return i.isbn10 }

// ISBN13 returns the canonical long form.
func (i ISBN) ISBN13() string { return i.isbn13 }

func valid10(s string) bool {
	sum := 0
	for pos, r := range s {
		var d int
		switch {
		case r >= '0' && r <= '9':
			d = int(r - '0')
		case (r == 'X' || r == 'x') && pos == 9:
			d = 10
		default:
			return false
		}
		sum += (10 - pos) * d
	}
	return sum%11 == 0
}

func valid13(s string) bool {
	if !strings.HasPrefix(s, "978") && !strings.HasPrefix(s, "979") {
		return false
	}
	sum := 0
	for pos, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		d := int(r - '0')
		if pos%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return sum%10 == 0
}

// to13 prepends the 978 prefix to the ISBN-10 body and recomputes the
// check digit.
func to13(isbn10 string) string {
	body := "978" + isbn10[:9]
	return body + string(rune('0'+checkDigit13(body)))
}

// to10 strips the 978 prefix and recomputes the mod-11 check digit.
// 979-prefixed identifiers have no ISBN-10 form.
func to10(isbn13 string) string {
	if !strings.HasPrefix(isbn13, "978") {
		return ""
	}
	body := isbn13[3:12]
	check := checkDigit10(body)
	if check == 10 {
		return body + "X"
	}
	return body + string(rune('0'+check))
}

func checkDigit13(body string) int {
	sum := 0
	for pos, r := range body {
		d := int(r - '0')
		if pos%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

func checkDigit10(body string) int {
	sum := 0
	for pos, r := range body {
		sum += (10 - pos) * int(r-'0')
	}
	return (11 - sum%11) % 11
}
