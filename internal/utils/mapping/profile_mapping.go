package mapping

import (
	"github.com/SscSPs/contractor_marketplace/internal/core/domain"
	"github.com/SscSPs/contractor_marketplace/internal/models"
)

// ToModelProfile converts a domain Profile to a model Profile
func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		ID:         d.ID,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Profession: d.Profession,
		Balance:    d.Balance,
		Type:       models.ProfileType(d.Type),
		Timestamps: ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainProfile converts a model Profile to a domain Profile
func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Profession: m.Profession,
		Balance:    m.Balance,
		Type:       domain.ProfileType(m.Type),
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}
