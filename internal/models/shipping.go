package models

// ShippingZone is a per-city flat shipping rate. Among active zones, the
// first match by city name is authoritative for rate lookup.
type ShippingZone struct {
	BaseModel
	City         string  `json:"city"`
	Rate         float64 `json:"rate"`
	DeliveryTime string  `json:"delivery_time"`
	IsActive     bool    `json:"is_active"`
}

// ShippingCompany is a carrier that can be attached to shipped orders.
type ShippingCompany struct {
	BaseModel
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	IsActive bool   `json:"is_active"`
}
