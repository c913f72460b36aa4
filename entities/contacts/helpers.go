package contacts

import "api/schemas"

func isValidStatus(status string) bool {
	switch status {
	case schemas.CONTACT_STATUS_ACTIVE, schemas.CONTACT_STATUS_INACTIVE, schemas.CONTACT_STATUS_PROSPECT:
		return true
	}
	return false
}
