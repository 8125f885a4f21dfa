package models

type DatabaseSchemaType int

const (
	DATABASE_SCHEMA_TYPE_APP DatabaseSchemaType = iota
)

// DatabaseSchema identifies the postgres schema an executor is bound to. The
// application uses a single schema; the type exists so executors can refuse
// queries built for the wrong target.
type DatabaseSchema struct {
	SchemaType DatabaseSchemaType
	Schema     string
}

var DATABASE_APP_SCHEMA = DatabaseSchema{
	SchemaType: DATABASE_SCHEMA_TYPE_APP,
	Schema:     "casetrail",
}
