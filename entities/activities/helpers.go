package activities

import "api/schemas"

func isValidType(activityType string) bool {
	switch activityType {
	case schemas.ACTIVITY_TYPE_CALL,
		schemas.ACTIVITY_TYPE_EMAIL,
		schemas.ACTIVITY_TYPE_MEETING,
		schemas.ACTIVITY_TYPE_TASK,
		schemas.ACTIVITY_TYPE_NOTE:
		return true
	}
	return false
}

func isValidStatus(status string) bool {
	switch status {
	case schemas.ACTIVITY_STATUS_PENDING,
		schemas.ACTIVITY_STATUS_COMPLETED,
		schemas.ACTIVITY_STATUS_CANCELLED:
		return true
	}
	return false
}
