package models

import "time"

// Session is the typed shape stored in Redis under session:<token>. It
// is decoded on every read; a blob that does not parse is treated as no
// session at all.
type Session struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Session) Valid() bool {
	return s.Email != "" && s.Role != ""
}
