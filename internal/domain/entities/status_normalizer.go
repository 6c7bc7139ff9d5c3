package entities

import "strings"

// statusVocabulary maps gateway terms to the closed status set. Order matters
// only for readability: a term appears in exactly one group.
var statusVocabulary = []struct {
	status PaymentStatus
	terms  []string
}{
	{status: PaymentStatusApproved, terms: []string{"paid", "approved", "authorized", "confirmed"}},
	{status: PaymentStatusPending, terms: []string{"pending", "processing", "waiting_payment", "created"}},
	{status: PaymentStatusRefused, terms: []string{"refused", "failed", "cancelled", "canceled"}},
	{status: PaymentStatusExpired, terms: []string{"expired"}},
}

// NormalizeStatus maps a free-text gateway status or event name onto
// PaymentStatus. Matching is case-insensitive against the whole value first
// and then against each segment delimited by '.', ':', '/', '_', '-' or
// whitespace, so "payment.refused" and "PAYMENT_REFUSED" are refused while
// "unpaid" stays unknown. The whole-value check keeps "waiting_payment" pending.
func NormalizeStatus(raw string) PaymentStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return PaymentStatusUnknown
	}
	if st, ok := lookupStatusTerm(s); ok {
		return st
	}
	for _, seg := range strings.FieldsFunc(s, isStatusSegmentSeparator) {
		if st, ok := lookupStatusTerm(seg); ok {
			return st
		}
	}
	return PaymentStatusUnknown
}

// NormalizeGatewayStatus prefers the status field and falls back to the event
// name when the status alone is not recognized.
func NormalizeGatewayStatus(rawStatus, event string) PaymentStatus {
	if st := NormalizeStatus(rawStatus); st != PaymentStatusUnknown {
		return st
	}
	return NormalizeStatus(event)
}

func lookupStatusTerm(term string) (PaymentStatus, bool) {
	for _, group := range statusVocabulary {
		for _, t := range group.terms {
			if term == t {
				return group.status, true
			}
		}
	}
	return "", false
}

func isStatusSegmentSeparator(r rune) bool {
	switch r {
	case '.', ':', '/', '_', '-', ' ', '\t', '\n':
		return true
	}
	return false
}
