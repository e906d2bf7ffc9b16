package models

import "time"

type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CashierID     uint           `gorm:"not null;index" json:"cashier_id"`
	Cashier       Cashier        `gorm:"foreignKey:CashierID;references:ID" json:"cashier,omitempty"`
	PaidOnDate    *time.Time     `json:"paid_on_date,omitempty"`
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID" json:"order_products"`
}

// Paid reports whether the order has been rung up. An order without a
// paid_on_date is still open at the register.
func (o *Order) Paid() bool {
	return o.PaidOnDate != nil
}
