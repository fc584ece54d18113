package model

// All lists the models managed by the database migration
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Client{},
		&Address{},
		&Contract{},
		&Service{},
		&Item{},
	}
}
