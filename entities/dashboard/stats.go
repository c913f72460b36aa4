package dashboard

import (
	"api/schemas"
	"api/utils"
	"time"
)

type StageSummary struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type DashboardStats struct {
	TotalOpportunities int                     `json:"total_opportunities"`
	TotalValue         float64                 `json:"total_value"`
	WonOpportunities   int                     `json:"won_opportunities"`
	WonValue           float64                 `json:"won_value"`
	ConversionRate     float64                 `json:"conversion_rate"`
	PendingActivities  int                     `json:"pending_activities"`
	OverdueActivities  int                     `json:"overdue_activities"`
	PipelineByStage    map[string]StageSummary `json:"pipeline_by_stage"`
}

// computeStats agrega o painel a partir dos documentos do usuário.
// A taxa de conversão considera apenas oportunidades encerradas.
func computeStats(opportunities []schemas.Opportunity, activities []schemas.Activity, now time.Time) DashboardStats {
	stats := DashboardStats{
		PipelineByStage: map[string]StageSummary{},
	}

	closed := 0
	for _, opp := range opportunities {
		stats.TotalOpportunities++
		stats.TotalValue += opp.Value

		summary := stats.PipelineByStage[opp.Stage]
		summary.Count++
		summary.Value += opp.Value
		stats.PipelineByStage[opp.Stage] = summary

		switch opp.Stage {
		case utils.STAGE_CLOSED_WON:
			closed++
			stats.WonOpportunities++
			stats.WonValue += opp.Value
		case utils.STAGE_CLOSED_LOST:
			closed++
		}
	}

	if closed > 0 {
		stats.ConversionRate = float64(stats.WonOpportunities) / float64(closed) * 100
	}

	for _, activity := range activities {
		if activity.Status != schemas.ACTIVITY_STATUS_PENDING {
			continue
		}
		stats.PendingActivities++
		if activity.DueDate != nil && activity.DueDate.Before(now) {
			stats.OverdueActivities++
		}
	}

	return stats
}
