package memory

import (
	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"

	"github.com/google/uuid"
)

func idMatches(want *uuid.UUID, got uuid.UUID) bool {
	return want == nil || *want == got
}

func categoryMatches(want, got *uuid.UUID) bool {
	if want == nil {
		return true
	}

	return got != nil && *got == *want
}

// MatchBusiness scopes businesses: OwnerID is the owning account.
func MatchBusiness(b *entity.Business, scope proximity.Scope) bool {
	return idMatches(scope.OwnerID, b.OwnerID) &&
		categoryMatches(scope.CategoryID, b.CategoryID)
}

// MatchProduct scopes products: OwnerID is the business owner, ParentID the business.
func MatchProduct(p *entity.Product, scope proximity.Scope) bool {
	return idMatches(scope.OwnerID, p.OwnerID) &&
		idMatches(scope.ParentID, p.BusinessID) &&
		categoryMatches(scope.CategoryID, p.CategoryID)
}

// MatchService scopes services: OwnerID is the provider.
func MatchService(s *entity.Service, scope proximity.Scope) bool {
	return idMatches(scope.OwnerID, s.ProviderID) &&
		categoryMatches(scope.CategoryID, s.CategoryID)
}

// MatchAvailability scopes slots: OwnerID is the service provider, ParentID the service.
func MatchAvailability(a *entity.Availability, scope proximity.Scope) bool {
	return idMatches(scope.OwnerID, a.ProviderID) &&
		idMatches(scope.ParentID, a.ServiceID)
}
