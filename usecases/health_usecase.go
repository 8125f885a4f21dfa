package usecases

import (
	"context"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/repositories"
	"github.com/casetrail/casetrail-backend/usecases/executor_factory"
)

type healthRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type HealthUsecase struct {
	executorFactory  executor_factory.ExecutorFactory
	healthRepository healthRepository
}

func (u *HealthUsecase) GetHealthStatus(ctx context.Context) models.HealthStatus {
	statuses := []models.HealthItemStatus{}

	err := u.healthRepository.Liveness(ctx, u.executorFactory.NewExecutor())
	statuses = append(statuses, models.HealthItemStatus{
		Name:   models.DatabaseHealthItemName,
		Status: err == nil,
	})

	return models.HealthStatus{
		Statuses: statuses,
	}
}
