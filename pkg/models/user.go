package models

import "strings"

// Role is a user's function in the admissions team.
type Role string

const (
	RoleAdmin            Role = "Admin"
	RoleMarketingManager Role = "Marketing Manager"
	RoleSalesManager     Role = "Sales Manager"
	RoleSalesExecutive   Role = "Sales Executive"
)

// IsSales reports whether the role belongs to the sales team, which is any
// role whose name mentions Sales.
func (r Role) IsSales() bool {
	return strings.Contains(string(r), "Sales")
}

// SystemUserID attributes automated activities that have no human author.
const SystemUserID = "system"

// User is a system actor. Users are immutable after seeding.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
}
