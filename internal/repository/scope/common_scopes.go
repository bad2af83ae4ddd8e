package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// OrderBySortOrder is the display order for banners and promotions.
func OrderBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("created_at DESC")
}
