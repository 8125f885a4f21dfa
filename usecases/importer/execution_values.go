package importer

import (
	"strings"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
)

// InsertableValues turns a processed record into the column/value map handed
// to the insert. Empty values are dropped, and user-email fields keep only
// the addresses that resolved to an organization member.
func InsertableValues(schema EntitySchema, detail models.RecordDetail, rc *ReferenceContext) map[string]any {
	values := make(map[string]any, len(detail.NormalizedValues))
	for name, value := range detail.NormalizedValues {
		if isEmptyValue(value) {
			continue
		}
		values[name] = value
	}

	for _, field := range schema.Fields {
		if !field.UserRef {
			continue
		}
		value, _ := values[field.Name].(string)
		if value == "" {
			continue
		}
		if field.Type == FieldEmailList {
			matched := make([]string, 0)
			for _, email := range strings.Split(value, ";") {
				if _, found := rc.UsersByEmail[email]; found {
					matched = append(matched, email)
				}
			}
			if len(matched) == 0 {
				delete(values, field.Name)
			} else {
				values[field.Name] = strings.Join(matched, ";")
			}
		} else if _, found := rc.UsersByEmail[value]; !found {
			delete(values, field.Name)
		}
	}
	return values
}

// NewPicklistValues returns the picklist values a record carries that the
// organization does not have yet, keyed by picklist kind.
func NewPicklistValues(schema EntitySchema, detail models.RecordDetail, rc *ReferenceContext) map[models.PicklistKind][]string {
	var found map[models.PicklistKind][]string
	for _, field := range schema.Fields {
		if field.Picklist == "" {
			continue
		}
		value, _ := detail.NormalizedValues[field.Name].(string)
		if value == "" {
			continue
		}
		if _, _, ok := pure_utils.ClosestMatch(value, rc.Picklists[field.Picklist]); ok {
			continue
		}
		if found == nil {
			found = make(map[models.PicklistKind][]string)
		}
		found[field.Picklist] = append(found[field.Picklist], value)
	}
	return found
}
