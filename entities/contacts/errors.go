package contacts

const (
	CONTACTS_INVALID_REQUEST_DATA = 400 + iota
	INVALID_CONTACT_ID_FORMAT
	CANNOT_FIND_CONTACTS_IN_MONGODB
	CANNOT_FIND_CONTACT_BY_ID_IN_MONGODB
	CANNOT_INSERT_CONTACT_TO_MONGODB
	CANNOT_UPDATE_CONTACT_IN_MONGODB
	CANNOT_DELETE_CONTACT_FROM_MONGODB
)
