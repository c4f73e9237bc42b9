package kitabu

// Role is a system user's role as recorded by the backend. Role values are
// opaque to this client except for gating decisions.
type Role string

const (
	// RoleSuperAdmin may additionally view system logs and settings.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleAdmin may additionally manage staff.
	RoleAdmin Role = "admin"
	// RoleLibrarian may manage the library itself.
	RoleLibrarian Role = "librarian"
	// RoleTeacher has no library pages of its own.
	RoleTeacher Role = "teacher"
	// RoleNone is the role of an unresolved or unprovisioned identity.
	RoleNone Role = "none"
)

// Page identifies a destination in the staff dashboard for gating purposes.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageInventory Page = "inventory"
	PageStudents  Page = "students"
	PageStaff     Page = "staff"
	PageHistory   Page = "history"
	PageReports   Page = "reports"
	PageLogs      Page = "logs"
	PageSettings  Page = "settings"
)

// pageRoles is the static mapping from a page to the set of roles permitted
// to view it.
var pageRoles = map[Page][]Role{
	PageDashboard: {RoleLibrarian, RoleAdmin, RoleSuperAdmin},
	PageInventory: {RoleLibrarian, RoleAdmin, RoleSuperAdmin},
	PageStudents:  {RoleLibrarian, RoleAdmin, RoleSuperAdmin},
	PageStaff:     {RoleAdmin, RoleSuperAdmin},
	PageHistory:   {RoleLibrarian, RoleAdmin, RoleSuperAdmin},
	PageReports:   {RoleLibrarian, RoleAdmin, RoleSuperAdmin},
	PageLogs:      {RoleSuperAdmin},
	PageSettings:  {RoleAdmin, RoleSuperAdmin},
}

// orderedPages preserves the sidebar's link order.
var orderedPages = []Page{
	PageDashboard,
	PageInventory,
	PageStudents,
	PageStaff,
	PageHistory,
	PageReports,
	PageLogs,
	PageSettings,
}

// Allows reports whether the given role may view the given page. A page with
// no declared role set is denied to everyone. Link visibility and page access
// are independent decisions: a hidden link does not prevent direct
// navigation, so pages must call Allows themselves.
func Allows(role Role, page Page) bool {
	for _, r := range pageRoles[page] {
		if r == role {
			return true
		}
	}
	return false
}

// VisibleLinks returns the pages whose navigation links the given role should
// see, in sidebar order.
func VisibleLinks(role Role) []Page {
	var pages []Page
	for _, page := range orderedPages {
		if Allows(role, page) {
			pages = append(pages, page)
		}
	}
	return pages
}

// CommonLinks returns the pages visible to every authenticated staff role
// that has any pages at all. While role resolution is still in flight the
// gate defaults to this most permissive common view rather than blocking, so
// there is no flash of denied access before the real role loads.
func CommonLinks() []Page {
	var pages []Page
	for _, page := range orderedPages {
		common := true
		for _, role := range []Role{RoleLibrarian, RoleAdmin, RoleSuperAdmin} {
			if !Allows(role, page) {
				common = false
				break
			}
		}
		if common {
			pages = append(pages, page)
		}
	}
	return pages
}
