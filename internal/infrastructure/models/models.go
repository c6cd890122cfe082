package models

// All returns every persisted model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Citizen{},
		&Admin{},
		&GovernmentAgency{},
		&PanchayatEmployee{},
		&Asset{},
		&AgriculturalLand{},
		&Family{},
		&FamilyMember{},
		&Issue{},
		&Document{},
		&FinancialData{},
		&WelfareScheme{},
		&WelfareEnrol{},
		&Infrastructure{},
		&EnvironmentalData{},
		&ActivityLog{},
	}
}
