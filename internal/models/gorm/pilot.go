package gorm

import "github.com/google/uuid"

// Pilot is a crew member / contact record from the logbook backup.
type Pilot struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;uniqueIndex;not null"`
	UserID   int       `gorm:"column:user_id;not null"`
	Platform int       `gorm:"column:platform;not null"`
	Modified int64     `gorm:"column:modified;not null"`

	Notes       string `gorm:"column:notes;type:text"`
	Active      bool   `gorm:"column:active"`
	Company     string `gorm:"column:company;type:varchar(100)"`
	FavList     bool   `gorm:"column:fav_list"`
	UserAPI     string `gorm:"column:user_api;type:varchar(100)"`
	Facebook    string `gorm:"column:facebook;type:varchar(255)"`
	LinkedIn    string `gorm:"column:linkedin;type:varchar(255)"`
	PilotRef    string `gorm:"column:pilot_ref;type:varchar(100)"`
	PilotCode   string `gorm:"column:pilot_code;type:varchar(100)"`
	PilotName   string `gorm:"column:pilot_name;type:varchar(100)"`
	PilotEmail  string `gorm:"column:pilot_email;type:varchar(255)"`
	PilotPhone  string `gorm:"column:pilot_phone;type:varchar(50)"`
	Certificate string `gorm:"column:certificate;type:varchar(100)"`
	PhoneSearch string `gorm:"column:phone_search;type:varchar(50)"`
	PilotSearch string `gorm:"column:pilot_search;type:varchar(100)"`
	RosterAlias string `gorm:"column:roster_alias;type:varchar(100)"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (Pilot) TableName() string {
	return "pilots"
}
