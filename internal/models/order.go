package models

import "time"

// Order represents a customer order. OrderDate is assigned by the system
// at creation time and never changes.
//
// Products is filled by an explicit join query when a caller asks for it;
// GORM ignores it entirely (no preloading, no implicit object graph).
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderDate time.Time `json:"order_date" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null"`

	// Declared only so migration emits the foreign key constraint.
	User *User `json:"-" gorm:"foreignKey:UserID"`

	Products []Product `json:"products,omitempty" gorm:"-"`
}

// OrderPayload is the request body for creating an order. The order date
// is system-assigned, so the referenced user is the only client input.
type OrderPayload struct {
	UserID uint `json:"user_id" validate:"required"`
}

// OrderProduct is the association row linking an order to a product.
// The composite primary key makes a duplicate (order_id, product_id)
// pair a storage-level conflict rather than a silent second insert.
type OrderProduct struct {
	OrderID   uint `json:"order_id" gorm:"primaryKey"`
	ProductID uint `json:"product_id" gorm:"primaryKey"`

	// Declared only so migration emits the foreign key constraints.
	Order   *Order   `json:"-" gorm:"foreignKey:OrderID"`
	Product *Product `json:"-" gorm:"foreignKey:ProductID"`
}

// TableName keeps the join table named the way the schema declares it.
func (OrderProduct) TableName() string {
	return "order_products"
}
