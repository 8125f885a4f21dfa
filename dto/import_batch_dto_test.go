package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casetrail/casetrail-backend/models"
)

func TestAdaptRollbackResultDto(t *testing.T) {
	result := models.RollbackResult{
		ImportBatchId: "5b0bf1af-b3ef-4381-a604-93ed06372f33",
		DeletedCounts: map[models.EntityType]int64{
			models.EntityTypeClient: 2,
			models.EntityTypeCase:   1,
		},
	}

	adapted := AdaptRollbackResultDto(result)

	assert.Equal(t, result.ImportBatchId, adapted.ImportBatchId)
	assert.Equal(t, map[string]int64{"client": 2, "case": 1}, adapted.DeletedCounts)
}
