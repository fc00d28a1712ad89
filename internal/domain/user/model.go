package user

import "strings"

// Role is the resolved access role attached to every authenticated caller.
type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
	RoleScout  Role = "scout"
	RoleAgent  Role = "agent"
	RoleAdmin  Role = "admin"
)

var allRoles = map[Role]struct{}{
	RolePlayer: {},
	RoleCoach:  {},
	RoleScout:  {},
	RoleAgent:  {},
	RoleAdmin:  {},
}

func ParseRole(v string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(v)))
	_, ok := allRoles[role]
	return role, ok
}

// Principal is the authenticated caller identity resolved by the account
// service. The search core only ever consumes the role; it never re-derives
// identity itself.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

// ManagesOwnPlayers reports whether searches for this caller are scoped to
// their own player records instead of the published pool.
func (p Principal) ManagesOwnPlayers() bool {
	return p.Role == RolePlayer || p.Role == RoleAdmin
}
