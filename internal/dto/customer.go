package dto

import "github.com/nttbank/account-service/internal/core/domain"

// CustomerResponse is the customer snapshot returned by the lookup passthrough.
type CustomerResponse struct {
	ID               string                   `json:"id"`
	CustomerType     domain.CustomerType      `json:"customerType"`
	CustomerSubType  domain.CustomerSubType   `json:"customerSubType,omitempty"`
	FirstName        string                   `json:"firstName,omitempty"`
	LastName         string                   `json:"lastName,omitempty"`
	DocumentIdentity *domain.DocumentIdentity `json:"documentIdentity,omitempty"`
	IsActive         bool                     `json:"isActive"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               c.ID,
		CustomerType:     c.CustomerType,
		CustomerSubType:  c.CustomerSubType,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		DocumentIdentity: c.DocumentIdentity,
		IsActive:         c.IsActive,
	}
}
