package kitabu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllows(t *testing.T) {
	testCases := []struct {
		role    Role
		page    Page
		allowed bool
	}{
		{RoleLibrarian, PageDashboard, true},
		{RoleLibrarian, PageStaff, false},
		{RoleLibrarian, PageLogs, false},
		{RoleAdmin, PageStaff, true},
		{RoleAdmin, PageLogs, false},
		{RoleAdmin, PageSettings, true},
		{RoleSuperAdmin, PageLogs, true},
		{RoleTeacher, PageDashboard, false},
		{RoleNone, PageDashboard, false},
		{RoleNone, PageLogs, false},
	}
	for _, testCase := range testCases {
		require.Equal(
			t,
			testCase.allowed,
			Allows(testCase.role, testCase.page),
			"role %s on page %s",
			testCase.role,
			testCase.page,
		)
	}
}

// An excluded role must never gain access through any path: not through the
// sidebar, and not by invoking the page directly.
func TestAllowsIsIndependentOfLinkVisibility(t *testing.T) {
	for _, page := range orderedPages {
		visible := false
		for _, link := range VisibleLinks(RoleLibrarian) {
			if link == page {
				visible = true
			}
		}
		require.Equal(t, Allows(RoleLibrarian, page), visible)
	}
}

func TestVisibleLinksOrder(t *testing.T) {
	links := VisibleLinks(RoleSuperAdmin)
	require.Equal(t, orderedPages, links)

	links = VisibleLinks(RoleAdmin)
	require.NotContains(t, links, PageLogs)
	require.Contains(t, links, PageStaff)
}

// Before role resolution completes the gate defaults to the view common to
// all staff roles rather than blocking.
func TestCommonLinks(t *testing.T) {
	links := CommonLinks()
	require.Contains(t, links, PageDashboard)
	require.Contains(t, links, PageInventory)
	require.NotContains(t, links, PageStaff)
	require.NotContains(t, links, PageLogs)
	require.NotContains(t, links, PageSettings)
}
