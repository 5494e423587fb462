package models

// Ingredient is a shared catalog entry. The same name may appear with
// different units, but each (name, unit) pair exists at most once.
type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"size:100;uniqueIndex:idx_ingredients_name_unit" json:"name" binding:"required,max=100" example:"flour"`
	Unit string `gorm:"size:20;uniqueIndex:idx_ingredients_name_unit" json:"unit" binding:"required,max=20" example:"g"`
}
