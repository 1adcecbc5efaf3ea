package gorm

import "github.com/google/uuid"

// SettingConfig is one configuration entry. Some upstream producers send a
// plain numeric identifier instead of a GUID; the importer derives a
// canonical one, so the stored GUID is always valid.
type SettingConfig struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID       uuid.UUID `gorm:"column:guid;type:uuid;index:idx_setting_configs_key,unique;not null"`
	ConfigCode int       `gorm:"column:config_code;index:idx_setting_configs_key,unique;not null"`
	UserID     int       `gorm:"column:user_id;not null"`
	Platform   int       `gorm:"column:platform;not null"`
	Modified   int64     `gorm:"column:modified;not null"`

	Name  string `gorm:"column:name;type:varchar(100)"`
	Group string `gorm:"column:config_group;type:varchar(100)"`
	Data  string `gorm:"column:data;type:text"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (SettingConfig) TableName() string {
	return "setting_configs"
}
