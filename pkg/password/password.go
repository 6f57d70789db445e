package password

import "golang.org/x/crypto/bcrypt"

// O bcrypt ignora tudo além de 72 bytes; truncamos explicitamente nos dois
// caminhos para que senhas longas verifiquem contra o próprio hash.
const maxPasswordBytes = 72

// Hash gera um hash bcrypt com salt aleatório por chamada.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara a senha em texto com o hash armazenado, aplicando a mesma regra de truncamento.
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
