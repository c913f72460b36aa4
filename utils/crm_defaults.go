package utils

import (
	"slices"
	"strings"

	"api/schemas"
)

// Lista de usuários válidos da empresa Gon Solutions. Fonte única: usada tanto
// pelo middleware de autenticação quanto pela administração de usuários.
var ValidUserEmails = []string{
	"admin@gonsolutions.com",
	"gerencia@gonsolutions.com",
	"vendas@gonsolutions.com",
	"suporte@gonsolutions.com",
	"financeiro@gonsolutions.com",
	"marketing@gonsolutions.com",
	"ti@gonsolutions.com",
}

const ValidUserDomain = "@gonsolutions.com"

func IsValidUserEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))

	if !strings.HasSuffix(email, ValidUserDomain) {
		return false
	}

	return slices.Contains(ValidUserEmails, email)
}

const (
	DEFAULT_FUNNEL_NAME        = "Funil Principal"
	DEFAULT_FUNNEL_DESCRIPTION = "Funil padrão de vendas"

	STAGE_CLOSED_WON  = "closed_won"
	STAGE_CLOSED_LOST = "closed_lost"
)

// DefaultFunnelStages retorna os 6 estágios canônicos do funil padrão, na
// ordem de exibição do kanban. Fonte única: usada na criação do funil padrão
// e na migração de oportunidades legadas.
func DefaultFunnelStages() []schemas.FunnelStage {
	return []schemas.FunnelStage{
		{ID: "prospecting", Name: "Prospecção", Color: "bg-gray-100 text-gray-800", Order: 1},
		{ID: "qualification", Name: "Qualificação", Color: "bg-blue-100 text-blue-800", Order: 2},
		{ID: "proposal", Name: "Proposta", Color: "bg-yellow-100 text-yellow-800", Order: 3},
		{ID: "negotiation", Name: "Negociação", Color: "bg-orange-100 text-orange-800", Order: 4},
		{ID: STAGE_CLOSED_WON, Name: "Fechado - Ganho", Color: "bg-green-100 text-green-800", Order: 5},
		{ID: STAGE_CLOSED_LOST, Name: "Fechado - Perdido", Color: "bg-red-100 text-red-800", Order: 6},
	}
}
