package users

import (
	"api/schemas"
	"api/utils"
)

// filterInvalidUsers separa os usuários cujo e-mail não pertence mais à
// lista de e-mails autorizados.
func filterInvalidUsers(all []schemas.User) []schemas.User {
	invalid := []schemas.User{}
	for _, user := range all {
		if !utils.IsValidUserEmail(user.Email) {
			invalid = append(invalid, user)
		}
	}
	return invalid
}

// firstValidUser devolve o primeiro usuário autorizado da lista, na ordem
// recebida, para servir de destino em transferências de propriedade.
func firstValidUser(all []schemas.User) (schemas.User, bool) {
	for _, user := range all {
		if utils.IsValidUserEmail(user.Email) {
			return user, true
		}
	}
	return schemas.User{}, false
}
