package models

import "time"

// OrderProduct represents a single package inside a shipment order.
// Dimensions are centimeters, weight is kilograms.
type OrderProduct struct {
	ID      uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID string  `json:"-" gorm:"index;type:varchar(36)"`
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Length  float64 `json:"length"`
	Height  float64 `json:"height"`
	Width   float64 `json:"width"`
}

// Order represents a shipment order. An order is owned by exactly one user.
type Order struct {
	ID                   string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID               string         `json:"userId" gorm:"index;type:varchar(36)"`
	CollectionAddress    string         `json:"collectionAddress"`
	DestinationAddress   string         `json:"destinationAddress"`
	DestinationFirstName string         `json:"destinationFirstName"`
	DestinationLastName  string         `json:"destinationLastName"`
	DestinationEmail     string         `json:"destinationEmail"`
	DestinationPhone     string         `json:"destinationPhone"`
	Department           string         `json:"department"`
	Province             string         `json:"province"`
	Reference            string         `json:"reference"`
	AddressReference     string         `json:"addressReference"`
	AdditionalNotes      string         `json:"additionalNotes,omitempty"`
	ScheduledDate        time.Time      `json:"scheduledDate"`
	Products             []OrderProduct `json:"products" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
