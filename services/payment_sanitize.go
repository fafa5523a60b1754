package services

import (
	"strings"
	"unicode/utf8"

	"github.com/MarcoT95/static/entity"
)

// SavedPaymentMethodIn is the client-supplied shape; everything in it is
// untrusted until sanitized.
type SavedPaymentMethodIn struct {
	ID            string `json:"id"`
	Method        string `json:"method"`
	MaskedLabel   string `json:"maskedLabel"`
	IsDefault     bool   `json:"isDefault"`
	PaypalEmail   string `json:"paypalEmail"`
	CardBrand     string `json:"cardBrand"`
	CardLast4     string `json:"cardLast4"`
	CardExpiry    string `json:"cardExpiry"`
	BankIbanLast4 string `json:"bankIbanLast4"`
}

// SanitizePaymentMethods drops malformed entries, truncates masked
// fields, reduces card/IBAN suffixes to their last 4 digits and leaves
// exactly one entry marked default: the first marked one wins, or the
// first entry when none was marked.
func SanitizePaymentMethods(in []SavedPaymentMethodIn) []entity.PaymentMethod {
	out := make([]entity.PaymentMethod, 0, len(in))

	for _, m := range in {
		if strings.TrimSpace(m.ID) == "" || strings.TrimSpace(m.MaskedLabel) == "" {
			continue
		}
		switch m.Method {
		case entity.PaymentMethodCard, entity.PaymentMethodPaypal, entity.PaymentMethodBank:
		default:
			continue
		}

		pm := entity.PaymentMethod{
			Method:      m.Method,
			MaskedLabel: truncate(m.MaskedLabel, 120),
			IsDefault:   m.IsDefault,
		}
		// masked fields only apply to the matching type
		switch m.Method {
		case entity.PaymentMethodPaypal:
			pm.PaypalEmail = truncate(m.PaypalEmail, 120)
		case entity.PaymentMethodCard:
			pm.CardBrand = truncate(m.CardBrand, 40)
			pm.CardLast4 = lastDigits(m.CardLast4, 4)
			pm.CardExpiry = truncate(m.CardExpiry, 5)
		case entity.PaymentMethodBank:
			pm.BankIbanLast4 = lastDigits(m.BankIbanLast4, 4)
		}
		out = append(out, pm)
	}

	if len(out) == 0 {
		return out
	}

	hasDefault := false
	for i := range out {
		if out[i].IsDefault {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		out[0].IsDefault = true
	} else {
		found := false
		for i := range out {
			if out[i].IsDefault && !found {
				found = true
				continue
			}
			out[i].IsDefault = false
		}
	}
	return out
}

// truncate caps s at n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// lastDigits strips everything non-numeric and keeps the trailing n.
func lastDigits(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) <= n {
		return digits
	}
	return digits[len(digits)-n:]
}
