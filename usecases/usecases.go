package usecases

import (
	"github.com/casetrail/casetrail-backend/repositories"
	"github.com/casetrail/casetrail-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories
	appName      string
	apiVersion   string
}

type Option func(*options)

type options struct {
	appName    string
	apiVersion string
}

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		appName:    "casetrail-backend",
		apiVersion: "dev",
	}
	for _, opt := range opts {
		opt(o)
	}
	return Usecases{
		Repositories: repositories,
		appName:      o.appName,
		apiVersion:   o.apiVersion,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

type VersionUsecase struct {
	ApiVersion string
}

func (usecases *Usecases) NewVersionUsecase() VersionUsecase {
	return VersionUsecase{
		ApiVersion: usecases.apiVersion,
	}
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.CasetrailDbRepository,
	}
}

func (usecases *Usecases) NewHealthUsecase() HealthUsecase {
	return HealthUsecase{
		executorFactory:  usecases.NewExecutorFactory(),
		healthRepository: usecases.Repositories.CasetrailDbRepository,
	}
}

func (usecases *Usecases) NewDryRunUsecase() DryRunUsecase {
	return NewDryRunUsecase(
		usecases.NewExecutorFactory(),
		usecases.Repositories.CasetrailDbRepository,
	)
}

func (usecases *Usecases) NewImportExecutionUsecase() ImportExecutionUsecase {
	return NewImportExecutionUsecase(
		usecases.NewExecutorFactory(),
		usecases.Repositories.CasetrailDbRepository,
	)
}

func (usecases *Usecases) NewImportBatchUsecase() ImportBatchUsecase {
	return NewImportBatchUsecase(
		usecases.NewExecutorFactory(),
		usecases.Repositories.CasetrailDbRepository,
	)
}
