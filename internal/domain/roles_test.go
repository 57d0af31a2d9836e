package domain

import "testing"

func TestIsValidRole(t *testing.T) {
	cases := []struct {
		role string
		ok   bool
	}{
		{"user", true},
		{"advisor", true},
		{"admin", true},
		{"", false},
		{"root", false},
	}

	for _, c := range cases {
		if IsValidRole(c.role) != c.ok {
			t.Fatalf("unexpected IsValidRole(%q)", c.role)
		}
	}
}

func TestAuthorize_Membership(t *testing.T) {
	adminOnly := NewRoleSet(RoleAdmin)

	if !Authorize(RoleAdmin, adminOnly) {
		t.Fatalf("admin should be allowed on admin-only set")
	}
	if Authorize(RoleAdvisor, adminOnly) {
		t.Fatalf("advisor should be denied on admin-only set")
	}
}

func TestAuthorize_NoHierarchy(t *testing.T) {
	// admin does not implicitly satisfy an advisor-only check
	advisorOnly := NewRoleSet(RoleAdvisor)

	if Authorize(RoleAdmin, advisorOnly) {
		t.Fatalf("admin should be denied on advisor-only set")
	}
	if !Authorize(RoleAdvisor, advisorOnly) {
		t.Fatalf("advisor should be allowed on advisor-only set")
	}
}

func TestAuthorize_EmptySetMeansAnyAuthenticated(t *testing.T) {
	if !Authorize(RoleUser, nil) {
		t.Fatalf("any valid role should pass an empty set")
	}
	if Authorize(Role("root"), nil) {
		t.Fatalf("unknown role should be denied even on an empty set")
	}
}

func TestAuthorize_MultiRoleSet(t *testing.T) {
	s := NewRoleSet(RoleAdvisor, RoleAdmin)

	if !Authorize(RoleAdmin, s) || !Authorize(RoleAdvisor, s) {
		t.Fatalf("both listed roles should be allowed")
	}
	if Authorize(RoleUser, s) {
		t.Fatalf("unlisted role should be denied")
	}
}
