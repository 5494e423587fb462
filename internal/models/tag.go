package models

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"size:50;uniqueIndex" json:"name" binding:"required,max=50" example:"dessert"`
}
