package opportunities

import (
	"api/schemas"
	"sort"
)

// nextOrder calcula a posição de um novo card no fim da coluna:
// max(order) + 1 dentro da partição já carregada. Usar o máximo em vez da
// contagem evita colisões quando exclusões deixam buracos na numeração.
func nextOrder(existing []schemas.Opportunity) int {
	maxOrder := 0
	for _, opp := range existing {
		if opp.Order > maxOrder {
			maxOrder = opp.Order
		}
	}
	return maxOrder + 1
}

// groupByStage particiona as oportunidades pelo valor atual de stage e ordena
// cada coluna. Cada oportunidade aparece exatamente uma vez.
func groupByStage(list []schemas.OpportunityWithRelations) map[string][]schemas.OpportunityWithRelations {
	grouped := map[string][]schemas.OpportunityWithRelations{}

	for _, opp := range list {
		grouped[opp.Stage] = append(grouped[opp.Stage], opp)
	}

	for stage := range grouped {
		sortStageColumn(grouped[stage])
	}

	return grouped
}

// sortStageColumn ordena uma coluna do kanban: order crescente (ausente conta
// como 0), empate decidido pela criação mais recente primeiro.
func sortStageColumn(column []schemas.OpportunityWithRelations) {
	sort.SliceStable(column, func(i, j int) bool {
		if column[i].Order != column[j].Order {
			return column[i].Order < column[j].Order
		}
		return column[i].CreatedAt.After(column[j].CreatedAt)
	})
}
