package pan

import (
	"strconv"
	"strings"
)

// issuerRanges holds known IIN/BIN prefixes as a static, in-memory
// table — no on-disk BIN database, persistence stays out of scope for
// this module.
var issuerRanges = []string{
	"4", "51", "52", "53", "54", "55", "2221", "2720",
	"34", "37", "6011", "65", "6", "35",
}

// brandPrefixes maps PAN prefixes to card brand names, longest prefix
// first so that e.g. "51" is checked before the (absent) bare "5".
var brandPrefixes = []struct {
	prefix string
	brand  string
}{
	{"2221", "Mastercard"}, {"2720", "Mastercard"},
	{"51", "Mastercard"}, {"52", "Mastercard"}, {"53", "Mastercard"},
	{"54", "Mastercard"}, {"55", "Mastercard"},
	{"34", "Amex"}, {"37", "Amex"},
	{"6011", "Discover"}, {"65", "Discover"},
	{"4", "Visa"},
}

// DetectBrand returns the card brand implied by pan's leading digits,
// or "Unknown" if none of the known prefixes match. This is a
// PAN-prefix probe and is distinct from the transaction router's
// card-token substring probe in the engine package, which stays
// exactly as specified.
func DetectBrand(pan string) string {
	// Mastercard's 2-series covers every 4-digit prefix from 2221
	// through 2720, not only the two endpoints listed in the table.
	if len(pan) >= 4 {
		if n, err := strconv.Atoi(pan[:4]); err == nil && n >= 2221 && n <= 2720 {
			return "Mastercard"
		}
	}
	for _, bp := range brandPrefixes {
		if strings.HasPrefix(pan, bp.prefix) {
			return bp.brand
		}
	}
	return "Unknown"
}

// InIssuerRange reports whether pan's leading digits match a known
// IIN/BIN prefix.
func InIssuerRange(pan string) bool {
	for _, r := range issuerRanges {
		if strings.HasPrefix(pan, r) {
			return true
		}
	}
	return false
}
