package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// OrderByHomeFirst puts the home workspace ahead of the rest.
func OrderByHomeFirst(db *gorm.DB) *gorm.DB {
	return db.Order("is_home DESC").Order("created_at ASC")
}
