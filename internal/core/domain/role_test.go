package domain

import (
	"encoding/json"
	"testing"
)

func TestParseRole_Strings(t *testing.T) {
	cases := map[string]Role{
		"admin":    RoleAdmin,
		"Admin":    RoleAdmin,
		"HOSPITAL": RoleHospital,
		" doctor ": RoleDoctor,
		"Patient":  RolePatient,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseRole_LegacyNumbers(t *testing.T) {
	cases := map[int]Role{
		0: RoleAdmin,
		1: RoleHospital,
		2: RoleDoctor,
		3: RolePatient,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%d) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseRole_Invalid(t *testing.T) {
	for _, in := range []any{"superuser", "", 4, -1} {
		if _, err := ParseRole(in); err == nil {
			t.Fatalf("ParseRole(%v) expected error", in)
		}
	}
}

func TestRole_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Role Role `json:"role"`
	}

	if err := json.Unmarshal([]byte(`{"role":"Doctor"}`), &payload); err != nil {
		t.Fatalf("string form failed: %v", err)
	}
	if payload.Role != RoleDoctor {
		t.Fatalf("expected doctor, got %q", payload.Role)
	}

	if err := json.Unmarshal([]byte(`{"role":3}`), &payload); err != nil {
		t.Fatalf("numeric form failed: %v", err)
	}
	if payload.Role != RolePatient {
		t.Fatalf("expected patient, got %q", payload.Role)
	}

	if err := json.Unmarshal([]byte(`{"role":9}`), &payload); err == nil {
		t.Fatalf("expected error for unknown numeric role")
	}
}

func TestLifecycle_Usable(t *testing.T) {
	cases := []struct {
		l    Lifecycle
		want bool
	}{
		{Lifecycle{Active: true, Deleted: false}, true},
		{Lifecycle{Active: false, Deleted: false}, false},
		{Lifecycle{Active: true, Deleted: true}, false},
		{Lifecycle{Active: false, Deleted: true}, false},
	}
	for _, tc := range cases {
		if got := tc.l.Usable(); got != tc.want {
			t.Fatalf("Usable(%+v) = %v, want %v", tc.l, got, tc.want)
		}
	}
}
