package service

// TokenService issues and checks session tokens. A token only names the
// current user; there is no password behind it.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (userID string, err error)
}
