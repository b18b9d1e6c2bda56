package defaultusers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cmsadmin/internal/domain"
)

func TestNewDefaults(t *testing.T) {
	r := New()

	assert.Equal(t, "Admin", r.UserAdmin())
	assert.Equal(t, "Guest", r.UserGuest())
	assert.Equal(t, "Export", r.UserExport())
	assert.Equal(t, "Admin", r.UserDeletedResource())
	assert.Equal(t, "Guests", r.GroupGuests())
}

func TestNewRegistry_RejectsEmptyNames(t *testing.T) {
	tests := []struct {
		name                             string
		admin, guest, export, del, group string
	}{
		{"empty admin", "", "Guest", "Export", "", "Guests"},
		{"blank guest", "Admin", "   ", "Export", "", "Guests"},
		{"empty export", "Admin", "Guest", "", "", "Guests"},
		{"blank group", "Admin", "Guest", "Export", "", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.admin, tt.guest, tt.export, tt.del, tt.group)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, domain.ErrUserGroupNamesEmpty)
			assert.Equal(t, domain.CodeUserGroupNamesEmpty, domain.CodeOf(err))
		})
	}
}

func TestNewRegistry_TrimsAndFallsBack(t *testing.T) {
	r, err := NewRegistry(" root ", "visitor ", " exporter", "  ", " Visitors ")
	require.NoError(t, err)

	assert.Equal(t, "root", r.UserAdmin())
	assert.Equal(t, "visitor", r.UserGuest())
	assert.Equal(t, "exporter", r.UserExport())
	assert.Equal(t, "root", r.UserDeletedResource(), "blank deleted-resource user falls back to admin")
	assert.Equal(t, "Visitors", r.GroupGuests())

	r, err = NewRegistry("root", "visitor", "exporter", " ghost ", "Visitors")
	require.NoError(t, err)
	assert.Equal(t, "ghost", r.UserDeletedResource())
}

func TestIsDefaultUser(t *testing.T) {
	r, err := NewRegistry("Admin", "Guest", "Export", "Deleted", "Guests")
	require.NoError(t, err)

	tests := []struct {
		name string
		want bool
	}{
		{"Admin", true},
		{"Guest", true},
		{"Export", true},
		{"Deleted", true},
		{"sales/Admin", true},
		{"sales/emea/Guest", true},
		{"Editor", false},
		{"NotAdmin", false},
		{"admin", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsDefaultUser(tt.name))
		})
	}
}

func TestSingleNameChecks(t *testing.T) {
	r := New()

	assert.True(t, r.IsUserAdmin("Admin"))
	assert.True(t, r.IsUserAdmin("ou/Admin"))
	assert.False(t, r.IsUserAdmin("Guest"))

	assert.True(t, r.IsUserGuest("Guest"))
	assert.False(t, r.IsUserGuest("Guests"))

	assert.True(t, r.IsUserExport("ou/Export"))
	assert.False(t, r.IsUserExport(""))

	assert.True(t, r.IsGroupGuests("Guests"))
	assert.True(t, r.IsGroupGuests("ou/Guests"))
	assert.False(t, r.IsGroupGuests("Guest"))
	assert.False(t, r.IsGroupGuests(" "))
}

func TestClassify(t *testing.T) {
	c := New().Classify("marketing/Export")

	assert.Equal(t, Classification{
		Name:        "marketing/Export",
		DefaultUser: true,
		Export:      true,
	}, c)
}
