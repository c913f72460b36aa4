package activities

const (
	ACTIVITIES_INVALID_REQUEST_DATA = 500 + iota
	INVALID_ACTIVITY_ID_FORMAT
	CANNOT_FIND_ACTIVITIES_IN_MONGODB
	CANNOT_INSERT_ACTIVITY_TO_MONGODB
	CANNOT_UPDATE_ACTIVITY_IN_MONGODB
	CANNOT_DELETE_ACTIVITY_FROM_MONGODB
)
