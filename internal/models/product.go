package models

// Product represents an item available for purchase.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ProductName string  `json:"product_name" gorm:"type:varchar(100);not null"`
	Price       float64 `json:"price" gorm:"type:numeric(10,2);not null"`
}

// ProductPayload is the request body for creating or replacing a product.
// Price is a pointer so that an explicit 0.00 is distinguishable from
// a missing field.
type ProductPayload struct {
	ProductName string   `json:"product_name" validate:"required,max=100"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}
