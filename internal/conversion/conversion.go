package conversion

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"krw-converter/internal/models"
)

// DisplayPlaces is the number of decimals shown for rates and amounts
const DisplayPlaces = 2

var (
	ErrInvalidAmount   = errors.New("enter a valid non-negative number")
	ErrRateUnavailable = errors.New("exchange rate is unavailable")
)

// amountPattern accepts "12", "12.", "12.5" and ".5"; it rejects "", "." and
// anything with a second decimal point.
var amountPattern = regexp.MustCompile(`^(?:[0-9]+\.?[0-9]*|\.[0-9]+)$`)

// AllowedRune is the keystroke filter for amount fields
func AllowedRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// AllowedText reports whether every rune of s passes AllowedRune
func AllowedText(s string) bool {
	for _, r := range s {
		if !AllowedRune(r) {
			return false
		}
	}
	return true
}

// ParseAmount validates the whole field value, independent of what the
// keystroke filter let through.
func ParseAmount(text string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(text) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return amount, nil
}

// Converter applies one currency's rate from a fixed snapshot
type Converter struct {
	code models.Code
	rate decimal.Decimal
}

func NewConverter(code models.Code, table models.RateTable) *Converter {
	return &Converter{code: code, rate: table.Rate(code)}
}

func (c *Converter) Code() models.Code { return c.code }

func (c *Converter) Rate() decimal.Decimal { return c.rate }

// ToForeign converts a KRW amount text into the formatted foreign amount
func (c *Converter) ToForeign(krwText string) (string, error) {
	krw, err := ParseAmount(krwText)
	if err != nil {
		return "", err
	}
	if !c.rate.IsPositive() {
		return "", fmt.Errorf("%w: KRW/%s", ErrRateUnavailable, c.code)
	}
	return krw.Div(c.rate).StringFixed(DisplayPlaces), nil
}

// ToKRW converts a foreign amount text into the formatted KRW amount
func (c *Converter) ToKRW(foreignText string) (string, error) {
	foreign, err := ParseAmount(foreignText)
	if err != nil {
		return "", err
	}
	if !c.rate.IsPositive() {
		return "", fmt.Errorf("%w: %s/KRW", ErrRateUnavailable, c.code)
	}
	return foreign.Mul(c.rate).StringFixed(DisplayPlaces), nil
}

// RateLabel renders "1 USD = 1333.33 KRW"
func RateLabel(code models.Code, table models.RateTable) string {
	return fmt.Sprintf("1 %s = %s %s", code, table.Rate(code).StringFixed(DisplayPlaces), models.KRW)
}
