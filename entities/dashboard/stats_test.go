package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api/schemas"
	"api/utils"
)

func TestComputeStats(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	opportunities := []schemas.Opportunity{
		{Stage: "prospecting", Value: 1000},
		{Stage: "proposal", Value: 2000},
		{Stage: utils.STAGE_CLOSED_WON, Value: 5000},
		{Stage: utils.STAGE_CLOSED_WON, Value: 3000},
		{Stage: utils.STAGE_CLOSED_LOST, Value: 7000},
	}

	activities := []schemas.Activity{
		{Status: schemas.ACTIVITY_STATUS_PENDING, DueDate: &past},
		{Status: schemas.ACTIVITY_STATUS_PENDING, DueDate: &future},
		{Status: schemas.ACTIVITY_STATUS_PENDING},
		{Status: schemas.ACTIVITY_STATUS_COMPLETED, DueDate: &past},
	}

	stats := computeStats(opportunities, activities, now)

	assert.Equal(t, 5, stats.TotalOpportunities)
	assert.Equal(t, float64(18000), stats.TotalValue)
	assert.Equal(t, 2, stats.WonOpportunities)
	assert.Equal(t, float64(8000), stats.WonValue)

	// 2 ganhas em 3 encerradas.
	assert.InDelta(t, 66.66, stats.ConversionRate, 0.01)

	assert.Equal(t, 3, stats.PendingActivities)
	assert.Equal(t, 1, stats.OverdueActivities)

	require.Contains(t, stats.PipelineByStage, utils.STAGE_CLOSED_WON)
	assert.Equal(t, 2, stats.PipelineByStage[utils.STAGE_CLOSED_WON].Count)
	assert.Equal(t, float64(8000), stats.PipelineByStage[utils.STAGE_CLOSED_WON].Value)
}

func TestComputeStatsSemDados(t *testing.T) {
	stats := computeStats(nil, nil, time.Now())

	assert.Zero(t, stats.TotalOpportunities)
	assert.Zero(t, stats.ConversionRate)
	assert.Empty(t, stats.PipelineByStage)
}

func TestComputeStatsSemOportunidadesEncerradas(t *testing.T) {
	opportunities := []schemas.Opportunity{
		{Stage: "prospecting", Value: 100},
		{Stage: "negotiation", Value: 200},
	}

	stats := computeStats(opportunities, nil, time.Now())

	assert.Zero(t, stats.ConversionRate)
	assert.Zero(t, stats.WonOpportunities)
}
