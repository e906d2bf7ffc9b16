package models

type Cashier struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string  `gorm:"type:varchar(100);not null" json:"last_name"`
	Orders    []Order `gorm:"foreignKey:CashierID" json:"orders,omitempty"`
}

// FullName joins first and last name without a separator; the receipts
// have always printed it this way.
func (c *Cashier) FullName() string {
	return c.FirstName + c.LastName
}
