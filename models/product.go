package models

type Product struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `gorm:"type:varchar(255);not null" json:"product_name"`
	Price      float64  `gorm:"type:decimal(10,2);not null" json:"price"`
	Brand      string   `gorm:"type:varchar(255);not null" json:"brand"`
	CategoryID uint     `gorm:"not null" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
}
