package gorm

import "github.com/google/uuid"

// Query is a saved logbook query definition.
type Query struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;uniqueIndex;not null"`
	UserID   int       `gorm:"column:user_id;not null"`
	Platform int       `gorm:"column:platform;not null"`
	Modified int64     `gorm:"column:modified;not null"`

	Name      string `gorm:"column:name;type:varchar(100)"`
	MQCode    string `gorm:"column:mq_code;type:varchar(100)"`
	QuickView bool   `gorm:"column:quick_view"`
	ShortName string `gorm:"column:short_name;type:varchar(100)"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (Query) TableName() string {
	return "queries"
}

// QueryBuild is one build step of a saved query.
type QueryBuild struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;uniqueIndex;not null"`
	UserID   int       `gorm:"column:user_id;not null"`
	Platform int       `gorm:"column:platform;not null"`
	Modified int64     `gorm:"column:modified;not null"`

	Build1 string `gorm:"column:build1;type:varchar(100)"`
	Build2 int    `gorm:"column:build2"`
	Build3 int    `gorm:"column:build3"`
	Build4 string `gorm:"column:build4;type:varchar(100)"`
	MQCode string `gorm:"column:mq_code;type:varchar(100)"`
	MQBCode string `gorm:"column:mqb_code;type:varchar(100)"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (QueryBuild) TableName() string {
	return "query_builds"
}
