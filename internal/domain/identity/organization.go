package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Organization is the tenant boundary. Every business record in the
// system belongs to exactly one organization.
type Organization struct {
	shared.BaseAggregateRoot
	Name     string
	Slug     string
	IsActive bool
}

// NewOrganization creates a new active organization
func NewOrganization(name, slug string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ORG_NAME", "Organization name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_ORG_NAME", "Organization name cannot exceed 200 characters")
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !slugPattern.MatchString(slug) {
		return nil, shared.NewDomainError("INVALID_ORG_SLUG", "Slug must be lowercase letters, digits and hyphens")
	}

	return &Organization{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		IsActive:          true,
	}, nil
}

// Deactivate disables the organization and locks out its members
func (o *Organization) Deactivate() {
	o.IsActive = false
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Rename changes the organization's display name
func (o *Organization) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_ORG_NAME", "Organization name cannot be empty")
	}
	o.Name = name
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}
