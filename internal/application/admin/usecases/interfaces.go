package usecases

type PasswordVerifier interface {
	Verify(password, hash string) error
}
