package users

const (
	USERS_INVALID_REQUEST_DATA = 700 + iota
	CANNOT_FIND_USERS_IN_MONGODB
	CANNOT_DELETE_USERS_FROM_MONGODB
	CANNOT_TRANSFER_OPPORTUNITIES_IN_MONGODB
	CANNOT_COUNT_DOCUMENTS_IN_MONGODB
)
