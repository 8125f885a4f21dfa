package repositories

// CasetrailDbRepository implements the repository interfaces declared by the
// usecases against the application database.
type CasetrailDbRepository struct{}

func NewCasetrailDbRepository() *CasetrailDbRepository {
	return &CasetrailDbRepository{}
}
