package port

// TokenService issues and verifies the opaque signed credential binding
// a request to a user id.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
