package models

// Role identifies the kind of authenticated principal.
type Role string

const (
	RoleUser       Role = "user"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)
