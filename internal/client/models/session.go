package models

import "time"

// Session is the persisted authentication state: the opaque backend token
// plus the user profile it belongs to. It is the local analogue of the
// browser console's localStorage token/user pair.
type Session struct {
	Token   string    `json:"token"`
	User    User      `json:"user"`
	SavedAt time.Time `json:"saved_at"`
}
