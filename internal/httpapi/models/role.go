package models

// Role is an ordered privilege level. Lower rank means more privileged,
// so comparisons always go through Rank rather than string order.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleMod       Role = "mod"
	RoleUser      Role = "user"
	RoleShadowBan Role = "shadow_ban"
	RoleFullBan   Role = "full_ban"
)

// roleRanks is the single source of truth for privilege ordering.
// Gaps between ranks leave room for levels added later.
var roleRanks = map[Role]int{
	RoleAdmin:     0,
	RoleMod:       10,
	RoleUser:      20,
	RoleShadowBan: 30,
	RoleFullBan:   40,
}

// unknownRank ranks below every known role, so an unrecognized or empty
// role string can do nothing and its content stays hidden.
const unknownRank = 50

// Rank returns the ordinal of the role.
func (r Role) Rank() int {
	if rank, ok := roleRanks[r]; ok {
		return rank
	}
	return unknownRank
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of threshold.
func (r Role) AtLeast(threshold Role) bool {
	return r.Rank() <= threshold.Rank()
}

// Banned reports whether the role is shadow-banned or worse. Banned
// authors keep access to their own records but their content is hidden
// from everyone else.
func (r Role) Banned() bool {
	return r.Rank() >= RoleShadowBan.Rank()
}
