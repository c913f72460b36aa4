package dashboard

const (
	DASHBOARD_INVALID_REQUEST_DATA = 800 + iota
	CANNOT_FIND_OPPORTUNITIES_IN_MONGODB
	CANNOT_FIND_ACTIVITIES_IN_MONGODB
)
