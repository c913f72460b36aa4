package notes

const (
	NOTES_INVALID_REQUEST_DATA = 600 + iota
	INVALID_NOTE_ID_FORMAT
	CANNOT_FIND_NOTES_IN_MONGODB
	CANNOT_INSERT_NOTE_TO_MONGODB
	CANNOT_DELETE_NOTE_FROM_MONGODB
)
