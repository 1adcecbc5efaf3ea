package gorm

import (
	"database/sql"

	"github.com/google/uuid"
)

// LimitRules is a duty/flight time limit rule. The producing app keys these
// by (user_id, limit_code, platform) rather than by the envelope GUID.
type LimitRules struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID      uuid.UUID `gorm:"column:guid;type:uuid;not null"`
	UserID    int       `gorm:"column:user_id;index:idx_limit_rules_key,unique;not null"`
	LimitCode uuid.UUID `gorm:"column:limit_code;type:uuid;index:idx_limit_rules_key,unique;not null"`
	Platform  int       `gorm:"column:platform;index:idx_limit_rules_key,unique;not null"`
	Modified  int64     `gorm:"column:modified;not null"`

	LFrom       sql.NullTime `gorm:"column:l_from;type:date"`
	LTo         sql.NullTime `gorm:"column:l_to;type:date"`
	LType       int          `gorm:"column:l_type"`
	LZone       int          `gorm:"column:l_zone"`
	LMinutes    int          `gorm:"column:l_minutes"`
	LPeriodCode int          `gorm:"column:l_period_code"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (LimitRules) TableName() string {
	return "limit_rules"
}
