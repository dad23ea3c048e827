package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the closed set of actor roles. Legacy clients encode roles either
// as numbers (0..3) or capitalised strings; ParseRole accepts both forms at
// the boundary so the rest of the system only ever sees these values.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHospital Role = "hospital"
	RoleDoctor   Role = "doctor"
	RolePatient  Role = "patient"
)

var legacyNumericRoles = map[int]Role{
	0: RoleAdmin,
	1: RoleHospital,
	2: RoleDoctor,
	3: RolePatient,
}

// ParseRole converts any accepted wire representation into a Role.
func ParseRole(v any) (Role, error) {
	switch t := v.(type) {
	case Role:
		return parseRoleString(string(t))
	case string:
		return parseRoleString(t)
	case int:
		return parseRoleNumber(t)
	case float64: // encoding/json decodes numbers as float64
		return parseRoleNumber(int(t))
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return "", fmt.Errorf("role: %q is not a valid role", t.String())
		}
		return parseRoleNumber(int(n))
	default:
		return "", fmt.Errorf("role: unsupported representation %T", v)
	}
}

func parseRoleString(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleHospital:
		return RoleHospital, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RolePatient:
		return RolePatient, nil
	}
	return "", fmt.Errorf("role: %q is not a valid role", s)
}

func parseRoleNumber(n int) (Role, error) {
	if r, ok := legacyNumericRoles[n]; ok {
		return r, nil
	}
	return "", fmt.Errorf("role: %d is not a valid role", n)
}

// Valid reports whether r is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHospital, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// UnmarshalJSON accepts both the canonical string form and the legacy
// numeric form.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
