package database

import (
	"api/utils"
	"os"
	"time"
)

const (
	MONGO_TIMEOUT            = 20 * time.Second
	COLLECTION_FUNNELS       = "funnels"
	COLLECTION_OPPORTUNITIES = "opportunities"
	COLLECTION_COMPANIES     = "companies"
	COLLECTION_CONTACTS      = "contacts"
	COLLECTION_ACTIVITIES    = "activities"
	COLLECTION_NOTES         = "notes"
	COLLECTION_USERS         = "users"
)

func GetDB() string {
	environment := os.Getenv(utils.ENV)

	if environment == utils.ENV_RELEASE {
		return "production"
	}

	if environment == utils.ENV_HOMOLOG {
		return "homolog"
	}

	if environment == utils.ENV_DEVELOPMENT {
		return "development"
	}

	panic("[MongoDB] Invalid DB name")
}
