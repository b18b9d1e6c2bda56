// Package defaultusers holds the names of the built-in users and groups.
package defaultusers

import (
	"strings"

	"github.com/osse101/cmsadmin/internal/domain"
)

// Default names used when no configuration is given.
const (
	DefaultUserAdmin           = "Admin"
	DefaultUserGuest           = "Guest"
	DefaultUserExport          = "Export"
	DefaultUserDeletedResource = "Admin"
	DefaultGroupGuests         = "Guests"
)

// OUSeparator separates organizational unit names from principal names.
const OUSeparator = "/"

// Registry answers whether a principal name is one of the built-in users or groups.
// A name matches either exactly or in organizational-unit qualified form ("ou/Admin").
type Registry struct {
	userAdmin           string
	userGuest           string
	userExport          string
	userDeletedResource string
	groupGuests         string
}

// New returns a registry with the default names.
func New() *Registry {
	return &Registry{
		userAdmin:           DefaultUserAdmin,
		userGuest:           DefaultUserGuest,
		userExport:          DefaultUserExport,
		userDeletedResource: DefaultUserDeletedResource,
		groupGuests:         DefaultGroupGuests,
	}
}

// NewRegistry validates and trims the configured names.
// userDeletedResource may be empty, in which case the admin name is used.
func NewRegistry(userAdmin, userGuest, userExport, userDeletedResource, groupGuests string) (*Registry, error) {
	if isBlank(userAdmin) || isBlank(userGuest) || isBlank(userExport) || isBlank(groupGuests) {
		return nil, domain.NewError(domain.CodeUserGroupNamesEmpty, domain.ErrMsgUserGroupNamesEmpty)
	}

	r := &Registry{
		userAdmin:   strings.TrimSpace(userAdmin),
		userGuest:   strings.TrimSpace(userGuest),
		userExport:  strings.TrimSpace(userExport),
		groupGuests: strings.TrimSpace(groupGuests),
	}
	if isBlank(userDeletedResource) {
		r.userDeletedResource = r.userAdmin
	} else {
		r.userDeletedResource = strings.TrimSpace(userDeletedResource)
	}
	return r, nil
}

func (r *Registry) UserAdmin() string           { return r.userAdmin }
func (r *Registry) UserGuest() string           { return r.userGuest }
func (r *Registry) UserExport() string          { return r.userExport }
func (r *Registry) UserDeletedResource() string { return r.userDeletedResource }
func (r *Registry) GroupGuests() string         { return r.groupGuests }

// IsDefaultUser reports whether name is one of the four built-in users.
func (r *Registry) IsDefaultUser(name string) bool {
	if isBlank(name) {
		return false
	}
	for _, candidate := range []string{r.userAdmin, r.userGuest, r.userExport, r.userDeletedResource} {
		if matches(name, candidate) {
			return true
		}
	}
	return false
}

// IsUserAdmin reports whether name is the admin user.
func (r *Registry) IsUserAdmin(name string) bool {
	return !isBlank(name) && matches(name, r.userAdmin)
}

// IsUserGuest reports whether name is the guest user.
func (r *Registry) IsUserGuest(name string) bool {
	return !isBlank(name) && matches(name, r.userGuest)
}

// IsUserExport reports whether name is the static export user.
func (r *Registry) IsUserExport(name string) bool {
	return !isBlank(name) && matches(name, r.userExport)
}

// IsGroupGuests reports whether name is the guests group.
func (r *Registry) IsGroupGuests(name string) bool {
	return !isBlank(name) && matches(name, r.groupGuests)
}

// Classification is the per-name breakdown served by the users check endpoint.
type Classification struct {
	Name        string `json:"name"`
	DefaultUser bool   `json:"default_user"`
	Admin       bool   `json:"admin"`
	Guest       bool   `json:"guest"`
	Export      bool   `json:"export"`
	GuestsGroup bool   `json:"guests_group"`
}

// Classify runs every check against name.
func (r *Registry) Classify(name string) Classification {
	return Classification{
		Name:        name,
		DefaultUser: r.IsDefaultUser(name),
		Admin:       r.IsUserAdmin(name),
		Guest:       r.IsUserGuest(name),
		Export:      r.IsUserExport(name),
		GuestsGroup: r.IsGroupGuests(name),
	}
}

func matches(name, principal string) bool {
	return name == principal || strings.HasSuffix(name, OUSeparator+principal)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
