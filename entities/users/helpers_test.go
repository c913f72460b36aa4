package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api/schemas"
)

func TestFilterInvalidUsers(t *testing.T) {
	all := []schemas.User{
		{Name: "Vendas", Email: "vendas@gonsolutions.com"},
		{Name: "Ex-funcionário", Email: "fulano@gonsolutions.com"},
		{Name: "Externo", Email: "alguem@outraempresa.com"},
	}

	invalid := filterInvalidUsers(all)

	require.Len(t, invalid, 2)
	assert.Equal(t, "fulano@gonsolutions.com", invalid[0].Email)
	assert.Equal(t, "alguem@outraempresa.com", invalid[1].Email)
}

func TestFilterInvalidUsersTodosValidos(t *testing.T) {
	all := []schemas.User{
		{Email: "admin@gonsolutions.com"},
		{Email: "ti@gonsolutions.com"},
	}

	assert.Empty(t, filterInvalidUsers(all))
}

func TestFirstValidUser(t *testing.T) {
	t.Run("PrimeiroAutorizadoNaOrdem", func(t *testing.T) {
		all := []schemas.User{
			{Email: "externo@outraempresa.com"},
			{Email: "gerencia@gonsolutions.com"},
			{Email: "admin@gonsolutions.com"},
		}

		target, ok := firstValidUser(all)

		require.True(t, ok)
		assert.Equal(t, "gerencia@gonsolutions.com", target.Email)
	})

	t.Run("NenhumAutorizado", func(t *testing.T) {
		all := []schemas.User{{Email: "externo@outraempresa.com"}}

		_, ok := firstValidUser(all)

		assert.False(t, ok)
	})
}
