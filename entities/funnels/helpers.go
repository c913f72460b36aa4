package funnels

import (
	"api/schemas"
	"errors"
	"strings"
)

// validateStages rejeita listas vazias, ids repetidos e ids em branco. Os ids
// dos estágios são gravados no campo stage das oportunidades, então precisam
// ser únicos dentro do funil.
func validateStages(stages []schemas.FunnelStage) error {
	if len(stages) == 0 {
		return errors.New("o funil precisa de pelo menos um estágio")
	}

	seen := make(map[string]bool, len(stages))
	for _, stage := range stages {
		id := strings.TrimSpace(stage.ID)
		if id == "" {
			return errors.New("estágio com id vazio")
		}
		if strings.TrimSpace(stage.Name) == "" {
			return errors.New("estágio com nome vazio")
		}
		if seen[id] {
			return errors.New("id de estágio duplicado: " + id)
		}
		seen[id] = true
	}

	return nil
}

// pickDefault escolhe o funil padrão do usuário: o marcado com is_default ou,
// na falta da marca, o mais antigo. Retorna nil para lista vazia.
func pickDefault(list []schemas.Funnel) *schemas.Funnel {
	if len(list) == 0 {
		return nil
	}

	oldest := &list[0]
	for i := range list {
		if list[i].IsDefault {
			return &list[i]
		}
		if list[i].CreatedAt.Before(oldest.CreatedAt) {
			oldest = &list[i]
		}
	}

	return oldest
}
