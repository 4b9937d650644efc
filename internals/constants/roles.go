package constants

// Role vocabulary. The quiz engine only knows two roles: every account
// registered through the public endpoint gets RoleUser, RoleAdmin is assigned
// out of band (seed script or manual SQL) and unlocks the /actuator surface.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var AllRoles = []string{RoleUser, RoleAdmin}

const ErrOnlyAdminsCanAccess = "Only admins may access this resource."
