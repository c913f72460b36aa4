package utils

import "fmt"

// Códigos compartilhados de infraestrutura. Cada pacote de entidade define os
// seus próprios códigos a partir de uma base distinta.
const (
	CANNOT_CONNECT_TO_MONGODB = iota + 1
	CANNOT_FIND_USER_IN_MONGODB
	CANNOT_UPSERT_USER_IN_MONGODB
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("Ocorreu um erro interno no servidor. Por favor, tente novamente mais tarde (Cod: %d)", internalErrorCode)
}
