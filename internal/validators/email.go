package validators

import "regexp"

// Mesmo padrão usado nos formulários: algo@algo.algo.
// A validação forte (MX, existência) é responsabilidade do backend.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}
