package scope

import "gorm.io/gorm"

// ByUser narrows a query to rows owned by one user.
func ByUser(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// ByYear narrows a query to one reference year.
func ByYear(year int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("year = ?", year)
	}
}
