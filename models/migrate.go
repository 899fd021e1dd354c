package models

// All lists every model in parent -> child order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserProfile{},
		&Province{},
		&City{},
		&Location{},
		&Property{},
		&RoomType{},
		&Room{},
		&Availability{},
		&Reservation{},
		&Payment{},
		&PropertyPerformanceSummary{},
		&RoomTypePerformanceSummary{},
	}
}
