package gorm

import "github.com/google/uuid"

// Airfield is an airfield record with geographic coordinates.
type Airfield struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;uniqueIndex;not null"`
	UserID   int       `gorm:"column:user_id;not null"`
	Platform int       `gorm:"column:platform;not null"`
	Modified int64     `gorm:"column:modified;not null"`

	AFCode      string  `gorm:"column:af_code;type:varchar(100)"`
	AFIATA      string  `gorm:"column:af_iata;type:varchar(3)"`
	AFICAO      string  `gorm:"column:af_icao;type:varchar(4)"`
	AFName      string  `gorm:"column:af_name;type:text"`
	City        string  `gorm:"column:city;type:varchar(100)"`
	AFCat       int     `gorm:"column:af_cat"`
	TZCode      int     `gorm:"column:tz_code"`
	Latitude    float64 `gorm:"column:latitude;type:numeric(10,6)"`
	Longitude   float64 `gorm:"column:longitude;type:numeric(10,6)"`
	ShowList    bool    `gorm:"column:show_list"`
	UserEdit    bool    `gorm:"column:user_edit"`
	AFCountry   int     `gorm:"column:af_country"`
	Notes       string  `gorm:"column:notes;type:text"`
	NotesUser   string  `gorm:"column:notes_user;type:text"`
	RegionUser  int     `gorm:"column:region_user"`
	ElevationFT int     `gorm:"column:elevation_ft"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (Airfield) TableName() string {
	return "airfields"
}
