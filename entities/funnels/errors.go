package funnels

const (
	FUNNELS_INVALID_REQUEST_DATA = 100 + iota
	INVALID_FUNNEL_ID_FORMAT
	CANNOT_FIND_FUNNELS_IN_MONGODB
	CANNOT_FIND_FUNNEL_BY_ID_IN_MONGODB
	CANNOT_INSERT_FUNNEL_TO_MONGODB
	CANNOT_UPDATE_FUNNEL_IN_MONGODB
	CANNOT_DELETE_FUNNEL_FROM_MONGODB
	CANNOT_COUNT_OPPORTUNITIES_IN_MONGODB
)
