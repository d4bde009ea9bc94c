package model

import "encoding/json"

// Delivery channels of a logistics entry.
const (
	DeliveryChannelDelivery      = "delivery"
	DeliveryChannelPickupInPoint = "pickup-in-point"
)

// ShippingData holds the destination address and one LogisticsInfo per item.
type ShippingData struct {
	Address       AddressDetail   `json:"address"`
	LogisticsInfo []LogisticsInfo `json:"logisticsInfo"`
}

type AddressDetail struct {
	AddressID    *string `json:"addressId,omitempty"`
	AddressType  *string `json:"addressType,omitempty"`
	ReceiverName string  `json:"receiverName"`
	Complement   *string `json:"complement,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	PostalCode   string  `json:"postalCode"`
	Reference    *string `json:"reference,omitempty"`
	Street       string  `json:"street"`
	Number       *string `json:"number,omitempty"`
}

// LogisticsInfo holds the shipping terms of the item at ItemIndex.
type LogisticsInfo struct {
	ShippingEstimate     string            `json:"shippingEstimate"`
	ItemIndex            int               `json:"itemIndex"`
	LockTTL              string            `json:"lockTTL"`
	Price                int64             `json:"price"`
	SelectedSla          string            `json:"selectedSla"`
	DeliveryWindow       json.RawMessage   `json:"deliveryWindow,omitempty"`
	ListPrice            *int64            `json:"listPrice,omitempty"`
	SellingPrice         *int64            `json:"sellingPrice,omitempty"`
	DeliveryCompany      *string           `json:"deliveryCompany,omitempty"`
	ShippingEstimateDate *string           `json:"shippingEstimateDate,omitempty"`
	Slas                 json.RawMessage   `json:"slas,omitempty"`
	ShipsTo              json.RawMessage   `json:"shipsTo,omitempty"`
	DeliveryIDs          []json.RawMessage `json:"deliveryIds,omitempty"`
	DeliveryChannel      *string           `json:"deliveryChannel,omitempty"`
	PickupStoreInfo      json.RawMessage   `json:"pickupStoreInfo,omitempty"`
	AddressID            *string           `json:"addressId,omitempty"`
	PolygonName          json.RawMessage   `json:"polygonName,omitempty"`
}

// IsPickupInPoint reports whether the item is collected by the customer
// instead of delivered. PickupStoreInfo is only meaningful when it is.
func (l LogisticsInfo) IsPickupInPoint() bool {
	return l.DeliveryChannel != nil && *l.DeliveryChannel == DeliveryChannelPickupInPoint
}
