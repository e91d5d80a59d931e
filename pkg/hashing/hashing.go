package hashing

import "golang.org/x/crypto/bcrypt"

// Hash genera un hash bcrypt del string plano. Cada llamada produce un hash
// distinto (salt nuevo); Verify acepta cualquier hash previo válido.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara un string plano contra un hash bcrypt (comparación en tiempo constante).
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
