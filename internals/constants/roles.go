package constants

// Role names embedded in the JWT "role" claim.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStudent,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
