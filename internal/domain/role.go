package domain

// Role is a declared lane from the role registry. Empty means no role.
type Role string

const (
	RoleNone   Role = ""
	RoleMid    Role = "mid"
	RoleGold   Role = "gold"
	RoleExp    Role = "exp"
	RoleRoam   Role = "roam"
	RoleJungle Role = "jungle"
)

// Roles lists the playable lanes in display order.
func Roles() []Role {
	return []Role{RoleMid, RoleGold, RoleExp, RoleRoam, RoleJungle}
}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleMid, RoleGold, RoleExp, RoleRoam, RoleJungle:
		return Role(s), true
	}
	return RoleNone, false
}
