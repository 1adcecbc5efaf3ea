package gorm

import "github.com/google/uuid"

// Aircraft is one airframe from the logbook backup. The GUID is the stable
// external identifier; re-imports with the same GUID update in place.
type Aircraft struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;uniqueIndex;not null"`
	UserID   int       `gorm:"column:user_id;not null"`
	Platform int       `gorm:"column:platform;not null"`
	Modified int64     `gorm:"column:modified;not null"`

	Make          string `gorm:"column:make;type:varchar(100)"`
	Model         string `gorm:"column:model;type:varchar(100)"`
	Category      int    `gorm:"column:category"`
	AircraftClass int    `gorm:"column:aircraft_class"`
	Power         int    `gorm:"column:power"`
	Seats         int    `gorm:"column:seats"`
	Active        bool   `gorm:"column:active"`
	Reference     string `gorm:"column:reference;type:varchar(100)"`
	Tailwheel     bool   `gorm:"column:tailwheel"`
	Complex       bool   `gorm:"column:complex"`
	HighPerf      bool   `gorm:"column:high_perf"`
	Aerobatic     bool   `gorm:"column:aerobatic"`
	FNPT          int    `gorm:"column:fnpt"`
	Kg5700        bool   `gorm:"column:kg5700"`
	Rating        string `gorm:"column:rating;type:varchar(100)"`
	Company       string `gorm:"column:company;type:varchar(100)"`
	CondLog       int    `gorm:"column:cond_log"`
	FavList       bool   `gorm:"column:fav_list"`
	SubModel      string `gorm:"column:sub_model;type:varchar(100)"`
	EngineType    int    `gorm:"column:engine_type"`

	RecordModified int64 `gorm:"column:record_modified"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}
