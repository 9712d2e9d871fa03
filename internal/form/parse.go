package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmpty     = errors.New("value is empty")
	ErrMalformed = errors.New("not a number")
	ErrRange     = errors.New("number out of range")
)

// ParseNumeric reads a form field as a float64. Empty or malformed text
// yields 0 without any error; magnitudes beyond float64 become ±Inf.
// Besides decimal and hex literals it accepts "NaN", "Infinity" with an
// optional sign, and one trailing f, F, d or D type suffix ("1.5d").
func ParseNumeric(text string) float64 {
	v, _ := parse(text)
	return v
}

// ParseNumericStrict uses the same grammar as ParseNumeric but reports
// every text that ParseNumeric would have replaced or clamped.
func ParseNumericStrict(text string) (float64, error) {
	v, err := parse(text)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parse(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrEmpty
	}
	lit, ok := literal(s)
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrMalformed)
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		// ParseFloat already returns ±Inf here.
		return v, fmt.Errorf("%q: %w", s, ErrRange)
	}
	return 0, fmt.Errorf("%q: %w", s, ErrMalformed)
}

// literal maps the accepted spellings onto strconv's grammar. strconv on its
// own would also take "inf" or "+INFINITY" in any case and digit
// underscores, none of which a user types into a number field.
func literal(s string) (string, bool) {
	sign, body := "", s
	if s[0] == '+' || s[0] == '-' {
		sign, body = s[:1], s[1:]
	}
	switch body {
	case "NaN":
		return "NaN", true
	case "Infinity":
		return sign + "Inf", true
	case "":
		return "", false
	}
	if n := len(body); n > 1 && strings.ContainsRune("fFdD", rune(body[n-1])) && isDigitOrDot(body[n-2]) {
		body = body[:n-1]
	}
	if !isDigitOrDot(body[0]) || strings.ContainsRune(body, '_') {
		return "", false
	}
	return sign + body, true
}

func isDigitOrDot(c byte) bool {
	return c == '.' || ('0' <= c && c <= '9')
}

// FieldError ties a parse failure to the form field it came from.
type FieldError struct {
	Field   string `json:"field"`
	Text    string `json:"text"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// FieldErrors collects every rejected field of one calculate action.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// For returns the message for one field, or "" if it parsed.
func (fe FieldErrors) For(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}
