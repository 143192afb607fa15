package domain

// CreditType is the credit product held by a customer.
type CreditType string

const (
	PersonalCredit CreditType = "PERSONAL"
	BusinessCredit CreditType = "BUSINESS"
	CardBankCredit CreditType = "CARD_BANK"
)

// Credit is a read-only snapshot of a credit product owned by the credit service.
type Credit struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	CreditType CreditType `json:"creditType"`
	IsActive   bool       `json:"active"`
}

// HasActiveCardBank reports whether any credit in the list is an active CARD_BANK product.
func HasActiveCardBank(credits []Credit) bool {
	for _, c := range credits {
		if c.IsActive && c.CreditType == CardBankCredit {
			return true
		}
	}
	return false
}
