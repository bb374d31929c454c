package auth

import "golang.org/x/crypto/bcrypt"

// Agent is an internal Syemed account. Name is the short sales name kept
// in clientes.comercial_asignado, so a logged-in agent's searches rank
// their own customers first.
type Agent struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

func (a Agent) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
}

func GeneratePasswordHash(pass string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
