// internal/models/property.go
package models

import "encoding/json"

// LookupRequest is the body of POST /api/property
type LookupRequest struct {
	RedfinURL string `json:"redfin_url" binding:"required" example:"https://www.redfin.com/CA/City/123-Main-St/home/12345"`
}

// AddressInfo is the normalized address extracted from the listing details
type AddressInfo struct {
	Street  string `json:"street" example:"123 Main St"`
	City    string `json:"city" example:"City"`
	State   string `json:"state" example:"CA"`
	ZipCode string `json:"zip_code" example:"90000"`
}

// PropertyResult pairs the extracted address with the full detail payload.
// Other is passed through untouched, so the address also appears inside it.
type PropertyResult struct {
	AddressInfo AddressInfo     `json:"address_info"`
	Other       json.RawMessage `json:"other" swaggertype:"object"`
}

type LookupResponse struct {
	Status string          `json:"status" example:"success"`
	Data   *PropertyResult `json:"data"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-01-01T12:00:00.000000Z"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"redfin_url is required"`
}
