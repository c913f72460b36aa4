package opportunities

const (
	OPPORTUNITIES_INVALID_REQUEST_DATA = 200 + iota
	INVALID_OPPORTUNITY_ID_FORMAT
	CANNOT_FIND_OPPORTUNITIES_IN_MONGODB
	CANNOT_FIND_OPPORTUNITY_BY_ID_IN_MONGODB
	CANNOT_INSERT_OPPORTUNITY_TO_MONGODB
	CANNOT_UPDATE_OPPORTUNITY_IN_MONGODB
	CANNOT_DELETE_OPPORTUNITY_FROM_MONGODB
	CANNOT_FIND_DEFAULT_FUNNEL_IN_MONGODB
	CANNOT_MIGRATE_OPPORTUNITIES_IN_MONGODB
	CANNOT_RESOLVE_OPPORTUNITY_RELATIONS
)
