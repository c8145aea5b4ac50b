package request

// CredentialsRequest is the body of both register and login. The
// username/passwd tags are only enforced on register; login reports any
// mismatch as bad credentials instead.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,passwd"`
}

// CardRequest is a client-submitted card draft. Policy checks happen in
// the card service so that not-found can take precedence on update.
type CardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
