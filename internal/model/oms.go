package model

import "encoding/json"

// OrderChanged is an invoice or tracking notification attached to an order.
type OrderChanged struct {
	Type            string          `json:"type"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	InvoiceURL      string          `json:"invoiceUrl"`
	Courier         string          `json:"courier"`
	TrackingNumber  string          `json:"trackingNumber"`
	TrackingURL     string          `json:"trackingUrl"`
	EmbeddedInvoice string          `json:"embeddedInvoice"`
	OrderID         string          `json:"orderId"`
	Items           json.RawMessage `json:"items"`
	IssuanceDate    string          `json:"issuanceDate"`
	InvoiceValue    int64           `json:"invoiceValue"`
	IsLast          bool            `json:"isLast"`
	InvoiceKey      string          `json:"invoiceKey"`
	CourierStatus   json.RawMessage `json:"courierStatus"`
	Cfop            json.RawMessage `json:"cfop"`
}

type OrderModifyTracking struct {
	ID                string  `json:"id"`
	TrackingProvider  string  `json:"tracking_provider"`
	TrackingNumber    *string `json:"tracking_number,omitempty"`
	OriginCountryCode string  `json:"origin_country_code"`
	ShipNote          *string `json:"ship_note,omitempty"`
}

type OrderRefund struct {
	ID         string  `json:"id"`
	ReasonCode int     `json:"reason_code"`
	ReasonNote *string `json:"reason_note,omitempty"`
}

type OrderItemChanged struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type ApprovedOrder struct {
	Date               string `json:"date"`
	MarketplaceOrderID string `json:"marketplaceOrderId"`
	OrderID            string `json:"orderId"`
	Receipt            string `json:"receipt"`
}

// OrderDetail is the order document a marketplace places with a seller.
type OrderDetail struct {
	Items                       []OrderItemDetail   `json:"items"`
	IsCreatedAsync              *bool               `json:"isCreatedAsync,omitempty"`
	MarketplaceOrderID          string              `json:"marketplaceOrderId"`
	MarketplacePaymentValue     int64               `json:"marketplacePaymentValue"`
	MarketplaceServicesEndpoint string              `json:"marketplaceServicesEndpoint"`
	ClientProfileData           ClientProfileDetail `json:"clientProfileData"`
	ShippingData                ShippingData        `json:"shippingData"`
}

type OrderItemDetail struct {
	ID                int64           `json:"id"`
	Price             int64           `json:"price"`
	Quantity          int             `json:"quantity"`
	Seller            int64           `json:"seller"`
	Commission        *float64        `json:"commission,omitempty"`
	FreightCommission *float64        `json:"freightCommission,omitempty"`
	BundleItems       json.RawMessage `json:"bundleItems,omitempty"`
	ItemAttachment    *ItemAttachment `json:"itemAttachment,omitempty"`
	Attachments       json.RawMessage `json:"attachments,omitempty"`
	PriceTags         json.RawMessage `json:"priceTags,omitempty"`
	MeasurementUnit   json.RawMessage `json:"measurementUnit,omitempty"`
	UnitMultiplier    *float64        `json:"unitMultiplier,omitempty"`
	IsGift            *bool           `json:"isGift,omitempty"`
}

type ItemAttachment struct {
	Name    string          `json:"name"`
	Content json.RawMessage `json:"content"`
}
