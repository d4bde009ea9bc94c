package model

import (
	"encoding/json"
	"fmt"
)

// LogisticPickupPoint is a place where customers collect their orders.
type LogisticPickupPoint struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Instructions       string             `json:"instructions"`
	FormattedAddress   string             `json:"formatted_address"`
	Address            PickupPointAddress `json:"address"`
	IsActive           bool               `json:"isActive"`
	Distance           *float64           `json:"distance,omitempty"`
	Seller             string             `json:"seller"`
	Sort               []json.RawMessage  `json:"_sort,omitempty"`
	BusinessHours      []BusinessHour     `json:"businessHours"`
	TagsLabel          []string           `json:"tagsLabel"`
	PickupHolidays     []json.RawMessage  `json:"pickupHolidays"`
	IsThirdPartyPickup bool               `json:"isThirdPartyPickup"`
	AccountOwnerName   json.RawMessage    `json:"accountOwnerName,omitempty"`
	AccountOwnerID     json.RawMessage    `json:"accountOwnerId,omitempty"`
	ParentAccountName  json.RawMessage    `json:"parentAccountName,omitempty"`
	OriginalID         json.RawMessage    `json:"originalId,omitempty"`
}

type PickupPointAddress struct {
	PostalCode   string          `json:"postalCode"`
	Country      Country         `json:"country"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Neighborhood string          `json:"neighborhood"`
	Street       string          `json:"street"`
	Number       string          `json:"number"`
	Complement   string          `json:"complement"`
	Reference    json.RawMessage `json:"reference,omitempty"`
	Location     *Location       `json:"location"`
}

type Country struct {
	Acronym string `json:"acronym"`
	Name    string `json:"name"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BusinessHour is an opening window; DayOfWeek counts from Sunday = 0.
type BusinessHour struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// LogisticOutput is a page of pickup points.
type LogisticOutput struct {
	Items  []LogisticPickupPoint `json:"items"`
	Paging Paging                `json:"paging"`
}

type Paging struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// Truncated reports whether matches exist beyond the returned page.
func (o LogisticOutput) Truncated() bool {
	return o.Paging.Total > len(o.Items)
}

// LogisticDock is a fulfillment facility configuration, kept as received.
// DecodeDock reads the commonly used fields out of it.
type LogisticDock = json.RawMessage

// DockDetail is a typed view over part of a LogisticDock. Fields missing
// from the payload stay at their zero value; unlisted fields are ignored.
type DockDetail struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SalesChannels   []string        `json:"salesChannels"`
	FreightTableIDs []string        `json:"freightTableIds"`
	WmsEndPoint     string          `json:"wmsEndPoint"`
	PickupStoreInfo json.RawMessage `json:"pickupStoreInfo,omitempty"`
	Address         json.RawMessage `json:"address,omitempty"`
}

// DecodeDock fills a DockDetail from the raw dock payload.
func DecodeDock(dock LogisticDock) (DockDetail, error) {
	var detail DockDetail
	if err := json.Unmarshal(dock, &detail); err != nil {
		return DockDetail{}, fmt.Errorf("error decoding dock: %w", err)
	}
	return detail, nil
}

// ShippingConfiguration is the public shipping configuration of the account,
// kept as received.
type ShippingConfiguration = json.RawMessage
