package domain

import "testing"

func TestCanUpdateUser(t *testing.T) {
	cases := []struct {
		name       string
		callerRole string
		callerID   string
		targetID   string
		want       bool
	}{
		{"admin updates anyone", RoleAdmin, "admin_1", "user_2", true},
		{"admin updates self", RoleAdmin, "admin_1", "admin_1", true},
		{"user updates self", RoleUser, "user_1", "user_1", true},
		{"user updates other", RoleUser, "user_1", "user_2", false},
	}

	for _, tc := range cases {
		if got := CanUpdateUser(tc.callerRole, tc.callerID, tc.targetID); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanDeleteUser(t *testing.T) {
	cases := []struct {
		name       string
		callerRole string
		targetRole string
		want       bool
	}{
		{"admin deletes user", RoleAdmin, RoleUser, true},
		{"admin deletes admin", RoleAdmin, RoleAdmin, false},
		{"user deletes user", RoleUser, RoleUser, false},
		{"user deletes admin", RoleUser, RoleAdmin, false},
	}

	for _, tc := range cases {
		if got := CanDeleteUser(tc.callerRole, tc.targetRole); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Fatalf("expected known roles to be valid")
	}
	for _, r := range []string{"", "superuser", "Admin"} {
		if ValidRole(r) {
			t.Errorf("role %q should be invalid", r)
		}
	}
}
