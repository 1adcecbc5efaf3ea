package repositories

import gormlib "gorm.io/gorm"

// Set bundles every entity repository over one gorm handle, so callers get
// the whole store surface from a single constructor.
type Set struct {
	Aircraft      *AircraftRepository
	Flight        *FlightRepository
	ImagePic      *ImagePicRepository
	LimitRules    *LimitRulesRepository
	Query         *QueryRepository
	QueryBuild    *QueryBuildRepository
	Pilot         *PilotRepository
	Qualification *QualificationRepository
	SettingConfig *SettingConfigRepository
	Airfield      *AirfieldRepository
}

// NewSet creates all repositories over the given database handle.
func NewSet(db *gormlib.DB) *Set {
	return &Set{
		Aircraft:      NewAircraftRepository(db),
		Flight:        NewFlightRepository(db),
		ImagePic:      NewImagePicRepository(db),
		LimitRules:    NewLimitRulesRepository(db),
		Query:         NewQueryRepository(db),
		QueryBuild:    NewQueryBuildRepository(db),
		Pilot:         NewPilotRepository(db),
		Qualification: NewQualificationRepository(db),
		SettingConfig: NewSettingConfigRepository(db),
		Airfield:      NewAirfieldRepository(db),
	}
}
