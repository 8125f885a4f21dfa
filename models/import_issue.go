package models

type IssueSeverity string

const (
	// IssueSeverityError excludes the affected row, file or reference from execution.
	IssueSeverityError IssueSeverity = "error"
	// IssueSeverityWarning is informational; an automatic resolution is applied.
	IssueSeverityWarning IssueSeverity = "warning"
)

type IssueCode string

const (
	IssueUnknownFileType       IssueCode = "unknown_file_type"
	IssueMissingRequiredColumn IssueCode = "missing_required_column"
	IssueMissingRequiredValue  IssueCode = "missing_required_value"
	IssueDuplicateExternalId   IssueCode = "duplicate_external_id"
	IssueInvalidDate           IssueCode = "invalid_date"
	IssueInvalidNumber         IssueCode = "invalid_number"
	IssueInvalidEmail          IssueCode = "invalid_email"
	IssueInvalidEnumValue      IssueCode = "invalid_enum_value"
	IssueUnresolvedReference   IssueCode = "unresolved_reference"
	IssueUnknownColumn         IssueCode = "unknown_column"
	IssueUnmatchedUserEmail    IssueCode = "unmatched_user_email"
	IssueNewPicklistValue      IssueCode = "new_picklist_value"
	IssueFuzzyPicklistMatch    IssueCode = "fuzzy_picklist_match"
	IssueSuspiciousValue       IssueCode = "suspicious_value"
)

// ImportIssue carries enough context to be rendered to an operator directly.
// Row is 1-indexed and accounts for the header row (the first data row is 2).
// Row 0 means the issue is file-level, not row-level.
type ImportIssue struct {
	FileName string
	Row      int
	Column   string
	Message  string
	Code     IssueCode
	Severity IssueSeverity
}
