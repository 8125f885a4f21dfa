package importer

import (
	"strings"

	"github.com/casetrail/casetrail-backend/models"
)

type filePattern struct {
	fragment   string
	entityType models.EntityType
}

// Ordered: the numeric-prefix convention (NN_entityname.csv) first, then bare
// keywords. More specific fragments come before their substrings, so
// "case_subject" wins over "case" and "budget_adjustment" over "budget".
var filePatterns = []filePattern{
	{"01_organization", models.EntityTypeOrganization},
	{"02_client", models.EntityTypeClient},
	{"03_contact", models.EntityTypeContact},
	{"04_case", models.EntityTypeCase},
	{"05_subject", models.EntityTypeSubject},
	{"06_case_subject", models.EntityTypeCaseSubjectLink},
	{"07_update", models.EntityTypeUpdate},
	{"08_event", models.EntityTypeActivity},
	{"09_time_entr", models.EntityTypeTimeEntry},
	{"10_expense", models.EntityTypeExpense},
	{"11_budget", models.EntityTypeBudget},
	{"12_budget_adjustment", models.EntityTypeBudgetAdjustment},
	{"budget_adjustment", models.EntityTypeBudgetAdjustment},
	{"budget-adjustment", models.EntityTypeBudgetAdjustment},
	{"adjustment", models.EntityTypeBudgetAdjustment},
	{"case_subject", models.EntityTypeCaseSubjectLink},
	{"case-subject", models.EntityTypeCaseSubjectLink},
	{"case_update", models.EntityTypeUpdate},
	{"case_activit", models.EntityTypeActivity},
	{"case_event", models.EntityTypeActivity},
	{"case_budget", models.EntityTypeBudget},
	{"organization", models.EntityTypeOrganization},
	{"client", models.EntityTypeClient},
	{"account", models.EntityTypeClient},
	{"contact", models.EntityTypeContact},
	{"subject", models.EntityTypeSubject},
	{"case", models.EntityTypeCase},
	{"update", models.EntityTypeUpdate},
	{"event", models.EntityTypeActivity},
	{"activit", models.EntityTypeActivity},
	{"time_entr", models.EntityTypeTimeEntry},
	{"time-entr", models.EntityTypeTimeEntry},
	{"time", models.EntityTypeTimeEntry},
	{"expense", models.EntityTypeExpense},
	{"budget", models.EntityTypeBudget},
}

// ClassifyFileName maps a file name to an entity type by naming convention,
// independent of content. The second return is false when nothing matches,
// which is a terminal structural error for the file.
func ClassifyFileName(fileName string) (models.EntityType, bool) {
	name := strings.ToLower(fileName)
	name = strings.TrimSuffix(name, ".csv")
	name = strings.TrimSuffix(name, ".txt")

	for _, pattern := range filePatterns {
		if strings.Contains(name, pattern.fragment) {
			return pattern.entityType, true
		}
	}
	return "", false
}
