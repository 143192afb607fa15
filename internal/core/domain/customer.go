package domain

// CustomerType is the category a customer belongs to in the customer registry.
type CustomerType string

const (
	PersonalCustomer CustomerType = "PERSONAL"
	BusinessCustomer CustomerType = "BUSINESS"
)

// CustomerSubType refines a category; an empty value means no sub-category.
type CustomerSubType string

const (
	VIP  CustomerSubType = "VIP"
	PYME CustomerSubType = "PYME"
)

// DocumentType identifies the kind of identity document on file.
type DocumentType string

const (
	DNI      DocumentType = "DNI"
	CE       DocumentType = "CE"
	Passport DocumentType = "PASSPORT"
	RUC      DocumentType = "RUC"
)

// DocumentIdentity is the customer's identity document.
type DocumentIdentity struct {
	Number   string       `json:"number"`
	Type     DocumentType `json:"typeDocumentIdentity"`
	IsActive bool         `json:"isActive"`
}

// Customer is a read-only snapshot of a customer owned by the customer service.
type Customer struct {
	ID               string            `json:"id"`
	CustomerType     CustomerType      `json:"customerType"`
	CustomerSubType  CustomerSubType   `json:"customerSubType"`
	FirstName        string            `json:"firstName,omitempty"`
	LastName         string            `json:"lastName,omitempty"`
	DocumentIdentity *DocumentIdentity `json:"documentIdentity,omitempty"`
	IsActive         bool              `json:"isActive"`
}
