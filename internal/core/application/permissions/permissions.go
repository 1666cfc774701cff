package permissions

// Role identifies a class of user acting on the system. Roles arrive on each
// request and are resolved against a static permission table; there is no
// user store behind them.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCommercial Role = "commercial"
	RoleTechnician Role = "technician"
	RoleViewer     Role = "viewer"
)

// Permission names a single operation a role may perform.
type Permission string

const (
	CreateOrder            Permission = "create_order"
	AdvanceOrder           Permission = "advance_order"
	AssignTechnician       Permission = "assign_technician"
	SetPhysicalOrderNumber Permission = "set_physical_order_number"
	AddEvidence            Permission = "add_evidence"
	ViewOrders             Permission = "view_orders"
)

var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: {
		CreateOrder:            {},
		AdvanceOrder:           {},
		AssignTechnician:       {},
		SetPhysicalOrderNumber: {},
		AddEvidence:            {},
		ViewOrders:             {},
	},
	RoleCommercial: {
		CreateOrder:  {},
		AdvanceOrder: {},
		ViewOrders:   {},
	},
	RoleTechnician: {
		AdvanceOrder:           {},
		SetPhysicalOrderNumber: {},
		AddEvidence:            {},
		ViewOrders:             {},
	},
	RoleViewer: {
		ViewOrders: {},
	},
}

// Can reports whether the role holds the permission. Unknown roles hold
// nothing.
func Can(role Role, permission Permission) bool {
	grants, ok := rolePermissions[role]
	if !ok {
		return false
	}

	_, ok = grants[permission]
	return ok
}
