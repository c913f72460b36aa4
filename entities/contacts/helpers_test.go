package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"api/schemas"
)

func TestIsValidStatus(t *testing.T) {
	assert.True(t, isValidStatus(schemas.CONTACT_STATUS_ACTIVE))
	assert.True(t, isValidStatus(schemas.CONTACT_STATUS_INACTIVE))
	assert.True(t, isValidStatus(schemas.CONTACT_STATUS_PROSPECT))

	assert.False(t, isValidStatus("ativo"))
	assert.False(t, isValidStatus(""))
}
