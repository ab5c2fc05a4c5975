package auth

import "testing"

func TestRoleMatrix(t *testing.T) {
	if !RoleHasPermission(RoleAdmin, PermSystemAdmin) {
		t.Fatal("admin must hold every permission")
	}
	if RoleHasPermission(RoleHR, PermSystemAdmin) {
		t.Fatal("HR must not hold system admin")
	}
	if RoleHasPermission(RoleFaculty, PermDirectoryWrite) {
		t.Fatal("faculty must not write the directory")
	}
	if !RoleHasPermission(RoleFaculty, PermFamilyWrite) {
		t.Fatal("faculty manage their own family records")
	}
	if RoleHasPermission("Unknown", PermDirectoryRead) {
		t.Fatal("unknown roles hold nothing")
	}
}

func TestRoleGrantsAreSubsetOfDefaults(t *testing.T) {
	known := map[string]bool{}
	for _, perm := range DefaultPermissions {
		known[perm] = true
	}
	for role, perms := range RolePermissions {
		for _, perm := range perms {
			if !known[perm] {
				t.Fatalf("role %s grants unknown permission %s", role, perm)
			}
		}
	}
}
