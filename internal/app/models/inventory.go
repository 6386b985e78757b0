package models

const (
	InventoryStatusInStock    = "IN_STOCK"
	InventoryStatusLowStock   = "LOW_STOCK"
	InventoryStatusOutOfStock = "OUT_OF_STOCK"
	InventoryStatusExpired    = "EXPIRED"
)

func InventoryStatuses() []string {
	return []string{
		InventoryStatusInStock,
		InventoryStatusLowStock,
		InventoryStatusOutOfStock,
		InventoryStatusExpired,
	}
}

type InventoryItem struct {
	ID           string     `json:"id,omitempty"`
	Pharmacist   *Reference `json:"pharmacist,omitempty"`
	MedicineName string     `json:"medicineName"`
	BatchNumber  string     `json:"batchNumber,omitempty"`
	Quantity     int        `json:"quantity"`
	Price        float64    `json:"price"`
	ExpiryDate   *string    `json:"expiryDate"`
	Status       string     `json:"status,omitempty"`
	CreatedAt    string     `json:"createdAt,omitempty"`
	UpdatedAt    string     `json:"updatedAt,omitempty"`
}
