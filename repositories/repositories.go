package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter        ExecutorGetter
	CasetrailDbRepository *CasetrailDbRepository
}

func NewRepositories(connectionPool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:        NewExecutorGetter(connectionPool),
		CasetrailDbRepository: NewCasetrailDbRepository(),
	}
}
