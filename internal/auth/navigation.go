package auth

import "github.com/spec-kit/supplychain-dashboard/internal/domain"

// NavigationEntry is one link in the role menu.
type NavigationEntry struct {
	Label string
	Path  string
}

var navigation = map[domain.Role][]NavigationEntry{
	domain.RoleAdmin: {
		{Label: "Dashboard", Path: "/admin"},
		{Label: "Products Registered", Path: "/admin/products"},
		{Label: "Shipments In Transit", Path: "/admin/shipments"},
		{Label: "Anomalies Flagged", Path: "/admin/anomalies"},
	},
	domain.RoleSupplier: {
		{Label: "Dashboard", Path: "/supplier"},
		{Label: "Register Product", Path: "/supplier/register-product"},
	},
	domain.RoleConsumer: {
		{Label: "Buy Product", Path: "/consumer"},
		{Label: "Verify Product", Path: "/consumer/verify"},
		{Label: "My Orders", Path: "/consumer/orders"},
	},
	domain.RoleLogistics: {
		{Label: "Dashboard", Path: "/logistic"},
	},
}

// NavigationFor returns the menu of role. Unknown roles get an empty menu.
func NavigationFor(role domain.Role) []NavigationEntry {
	entries := navigation[role]
	out := make([]NavigationEntry, len(entries))
	copy(out, entries)
	return out
}

// HomePath is where a freshly logged-in role lands; empty when the role has no views.
func HomePath(role domain.Role) string {
	entries := navigation[role]
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Path
}
