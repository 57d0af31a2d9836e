package domain

type Role string

const (
	// User can view their own profile and advisory data
	RoleUser Role = "user"
	// Advisor can additionally access their client book
	RoleAdvisor Role = "advisor"
	// Admin can manage users
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdvisor) || r == string(RoleAdmin)
}

// RoleSet is the set of roles a protected route accepts. There is no role
// hierarchy: admin does not satisfy an advisor-only check unless the set
// includes admin explicitly.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// Authorize decides allow/deny for a role against a required set.
// An empty set means "any authenticated identity with a known role".
func Authorize(r Role, required RoleSet) bool {
	if !IsValidRole(string(r)) {
		return false
	}
	if len(required) == 0 {
		return true
	}
	return required.Contains(r)
}
