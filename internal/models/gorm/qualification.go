package gorm

import (
	"database/sql"

	"github.com/google/uuid"
)

// Qualification is a pilot qualification/currency record. RefAirfield always
// holds an identifier: the importer generates one when the source omits it.
type Qualification struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;uniqueIndex;not null"`
	UserID   int       `gorm:"column:user_id;not null"`
	Platform int       `gorm:"column:platform;not null"`
	Modified int64     `gorm:"column:modified;not null"`

	QCode         uuid.UUID    `gorm:"column:q_code;type:uuid;not null"`
	RefExtra      int          `gorm:"column:ref_extra"`
	RefModel      string       `gorm:"column:ref_model;type:varchar(100)"`
	Validity      int          `gorm:"column:validity"`
	DateValid     sql.NullTime `gorm:"column:date_valid;type:date"`
	QTypeCode     int          `gorm:"column:q_type_code"`
	DateIssued    sql.NullTime `gorm:"column:date_issued;type:date"`
	MinimumQty    int          `gorm:"column:minimum_qty"`
	NotifyDays    int          `gorm:"column:notify_days"`
	RefAirfield   uuid.UUID    `gorm:"column:ref_airfield;type:uuid;not null"`
	MinimumPeriod int          `gorm:"column:minimum_period"`
	NotifyComment string       `gorm:"column:notify_comment;type:text"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (Qualification) TableName() string {
	return "qualifications"
}
