package model

import "github.com/google/uuid"

// Principal is the already-authenticated caller, extracted from the access
// token at the HTTP boundary.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "ADMIN"
}
