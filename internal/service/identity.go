package service

import (
	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
)

// Identity is the authenticated company principal bound to a request. It is
// resolved once from a verified session token and is the sole authorization
// input for every ownership-scoped operation.
//
// The profile fields are a snapshot of the account at resolution time; job
// listings enrich their items from this snapshot rather than performing a
// fresh lookup per item.
type Identity struct {
	ID          uuid.UUID
	Email       string
	CompanyName string
	Logo        string
	CompanyCity string
}

// IdentityFromAccount builds an Identity from a company account record.
func IdentityFromAccount(account *domain.CompanyAccount) *Identity {
	return &Identity{
		ID:          account.ID,
		Email:       account.Email,
		CompanyName: account.CompanyName,
		Logo:        account.Logo,
		CompanyCity: account.CompanyCity,
	}
}
