package models

import (
	"database/sql/driver"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON holds an imported record verbatim. It wraps datatypes.JSON so the column type
// can be chosen per dialect.
type JSON struct {
	datatypes.JSON
}

// NewJSON copies b into a JSON value.
func NewJSON(b []byte) JSON {
	if len(b) == 0 {
		return JSON{}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return JSON{JSON: datatypes.JSON(cp)}
}

// Empty reports whether no record was kept.
func (j JSON) Empty() bool {
	return len(j.JSON) == 0
}

// Value stores an empty record as NULL.
func (j JSON) Value() (driver.Value, error) {
	if j.Empty() {
		return nil, nil
	}
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		j.JSON = nil
		return nil
	}
	return j.JSON.Scan(value)
}

// GormDBDataType picks the column type per driver; SQL Server has no json type.
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
