package model

// UserRole mirrors the roles managed by the external auth collaborator. The
// backend only inspects roles to gate the facilitator surface.
type UserRole string

const (
	RolePublic      UserRole = "public"
	RoleEditor      UserRole = "editor"
	RolePartner     UserRole = "partner"
	RoleAnalyst     UserRole = "analyst"
	RoleFacilitator UserRole = "facilitator"
	RoleAdmin       UserRole = "admin"
)
