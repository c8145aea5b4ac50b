package domain

// User is the whole persisted document: credentials, the last issued
// token and the embedded card list. Every card mutation rewrites it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Token    string `json:"token,omitempty"`
	Cards    []Card `json:"cards"`
}

// PublicUser is the part of a user that is safe to return to clients.
type PublicUser struct {
	Username string `json:"username"`
}

// Session is what register and login hand back to the client.
type Session struct {
	JWT  string     `json:"jwt"`
	User PublicUser `json:"user"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Username: u.Username}
}

// Clone returns a copy whose card list does not alias the receiver's.
func (u User) Clone() User {
	if u.Cards != nil {
		u.Cards = append(make([]Card, 0, len(u.Cards)), u.Cards...)
	}
	return u
}
