package companies

const (
	COMPANIES_INVALID_REQUEST_DATA = 300 + iota
	INVALID_COMPANY_ID_FORMAT
	CANNOT_FIND_COMPANIES_IN_MONGODB
	CANNOT_FIND_COMPANY_BY_ID_IN_MONGODB
	CANNOT_INSERT_COMPANY_TO_MONGODB
	CANNOT_UPDATE_COMPANY_IN_MONGODB
	CANNOT_DELETE_COMPANY_FROM_MONGODB
)
