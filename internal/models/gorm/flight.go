package gorm

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Flight is one logbook entry. Durations are decimal hours, time-of-day
// fields are kept as the integer form the backup carries, and counters that
// can be absent in the source stay nullable.
type Flight struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;uniqueIndex;not null"`
	UserID   int       `gorm:"column:user_id;not null"`
	Platform int       `gorm:"column:platform;not null"`
	Modified int64     `gorm:"column:modified;not null"`

	// AircraftID stays nil until an aircraft record sharing the same GUID
	// is imported and re-resolves the link.
	AircraftID *uint     `gorm:"column:aircraft_id;index"`
	Aircraft   *Aircraft `gorm:"foreignKey:AircraftID"`

	Date        sql.NullTime `gorm:"column:date;type:date"`
	FromAirport string       `gorm:"column:from_airport;type:varchar(100)"`
	ToAirport   string       `gorm:"column:to_airport;type:varchar(100)"`
	Route       string       `gorm:"column:route;type:text"`

	TimeOut sql.NullInt64 `gorm:"column:time_out"`
	TimeOff sql.NullInt64 `gorm:"column:time_off"`
	TimeOn  sql.NullInt64 `gorm:"column:time_on"`
	TimeIn  sql.NullInt64 `gorm:"column:time_in"`
	OnDuty  sql.NullInt64 `gorm:"column:on_duty"`
	OffDuty sql.NullInt64 `gorm:"column:off_duty"`

	TotalTime    decimal.Decimal `gorm:"column:total_time;type:numeric(5,2)"`
	PIC          decimal.Decimal `gorm:"column:pic;type:numeric(5,2)"`
	SIC          decimal.Decimal `gorm:"column:sic;type:numeric(5,2)"`
	Night        decimal.Decimal `gorm:"column:night;type:numeric(5,2)"`
	Solo         decimal.Decimal `gorm:"column:solo;type:numeric(5,2)"`
	CrossCountry decimal.Decimal `gorm:"column:cross_country;type:numeric(5,2)"`
	NVG          decimal.Decimal `gorm:"column:nvg;type:numeric(5,2)"`
	NVGOps       decimal.Decimal `gorm:"column:nvg_ops;type:numeric(5,2)"`
	Distance     decimal.Decimal `gorm:"column:distance;type:numeric(10,2)"`

	DayTakeoffs           sql.NullInt64 `gorm:"column:day_takeoffs"`
	DayLandingsFullStop   sql.NullInt64 `gorm:"column:day_landings_full_stop"`
	NightTakeoffs         sql.NullInt64 `gorm:"column:night_takeoffs"`
	NightLandingsFullStop sql.NullInt64 `gorm:"column:night_landings_full_stop"`
	AllLandings           sql.NullInt64 `gorm:"column:all_landings"`

	ActualInstrument    decimal.Decimal `gorm:"column:actual_instrument;type:numeric(5,2)"`
	SimulatedInstrument decimal.Decimal `gorm:"column:simulated_instrument;type:numeric(5,2)"`
	HobbsStart          decimal.Decimal `gorm:"column:hobbs_start;type:numeric(5,2)"`
	HobbsEnd            decimal.Decimal `gorm:"column:hobbs_end;type:numeric(5,2)"`
	TachStart           decimal.Decimal `gorm:"column:tach_start;type:numeric(5,2)"`
	TachEnd             decimal.Decimal `gorm:"column:tach_end;type:numeric(5,2)"`

	Holds     sql.NullInt64 `gorm:"column:holds"`
	Approach1 string        `gorm:"column:approach1;type:varchar(100)"`
	Approach2 string        `gorm:"column:approach2;type:varchar(100)"`
	Approach3 string        `gorm:"column:approach3;type:varchar(100)"`
	Approach4 string        `gorm:"column:approach4;type:varchar(100)"`
	Approach5 string        `gorm:"column:approach5;type:varchar(100)"`
	Approach6 string        `gorm:"column:approach6;type:varchar(100)"`

	DualGiven       decimal.Decimal `gorm:"column:dual_given;type:numeric(5,2)"`
	DualReceived    decimal.Decimal `gorm:"column:dual_received;type:numeric(5,2)"`
	SimulatedFlight decimal.Decimal `gorm:"column:simulated_flight;type:numeric(5,2)"`
	GroundTraining  decimal.Decimal `gorm:"column:ground_training;type:numeric(5,2)"`

	InstructorName     string `gorm:"column:instructor_name;type:varchar(100)"`
	InstructorComments string `gorm:"column:instructor_comments;type:text"`
	PilotComments      string `gorm:"column:pilot_comments;type:text"`

	FlightReview   bool `gorm:"column:flight_review"`
	Checkride      bool `gorm:"column:checkride"`
	IPC            bool `gorm:"column:ipc"`
	NVGProficiency bool `gorm:"column:nvg_proficiency"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
