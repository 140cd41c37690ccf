package models

// Persistable is implemented by every model that is stored in its own table.
type Persistable interface {
	TableName() string
}

var (
	_ Persistable = Account{}
	_ Persistable = Course{}
)
