// Package model declares the shapes returned by the platform services.
//
// JSON tags match the remote schemas exactly. Fields the remote schema leaves
// open are kept as json.RawMessage so their payload survives untouched.
// Monetary values are integers in cents unless noted otherwise.
package model

import "encoding/json"

// Order is the full order document returned by Order Management.
type Order struct {
	OrderID                     string               `json:"orderId"`
	Sequence                    Sequence             `json:"sequence"`
	MarketplaceOrderID          string               `json:"marketplaceOrderId"`
	MarketplaceServicesEndpoint string               `json:"marketplaceServicesEndpoint"`
	SellerOrderID               string               `json:"sellerOrderId"`
	Origin                      string               `json:"origin"`
	AffiliateID                 string               `json:"affiliateId"`
	SalesChannel                string               `json:"salesChannel"`
	MerchantName                string               `json:"merchantName"`
	Status                      string               `json:"status"`
	StatusDescription           string               `json:"statusDescription"`
	Value                       int64                `json:"value"`
	CreationDate                string               `json:"creationDate"`
	LastChange                  string               `json:"lastChange"`
	OrderGroup                  json.RawMessage      `json:"orderGroup"`
	Totals                      []ItemTotal          `json:"totals"`
	Items                       []OrderItem          `json:"items"`
	MarketplaceItems            []json.RawMessage    `json:"marketplaceItems"`
	ClientProfileData           ClientProfileDetail  `json:"clientProfileData"`
	GiftRegistryData            json.RawMessage      `json:"giftRegistryData"`
	MarketingData               json.RawMessage      `json:"marketingData"`
	RatesAndBenefitsData        json.RawMessage      `json:"ratesAndBenefitsData"`
	ShippingData                ShippingData         `json:"shippingData"`
	PaymentData                 PaymentData          `json:"paymentData"`
	PackageAttachment           PackageAttachment    `json:"packageAttachment"`
	Sellers                     []OrderSeller        `json:"sellers"`
	CallCenterOperatorData      json.RawMessage      `json:"callCenterOperatorData"`
	FollowUpEmail               string               `json:"followUpEmail"`
	LastMessage                 json.RawMessage      `json:"lastMessage"`
	Hostname                    string               `json:"hostname"`
	InvoiceData                 json.RawMessage      `json:"invoiceData"`
	ChangesAttachment           json.RawMessage      `json:"changesAttachment"`
	OpenTextField               json.RawMessage      `json:"openTextField"`
	RoundingError               int64                `json:"roundingError"`
	OrderFormID                 json.RawMessage      `json:"orderFormId"`
	CommercialConditionData     json.RawMessage      `json:"commercialConditionData"`
	IsCompleted                 bool                 `json:"isCompleted"`
	CustomData                  *CustomData          `json:"customData"`
	StorePreferencesData        StorePreferencesData `json:"storePreferencesData"`
	AllowCancellation           bool                 `json:"allowCancellation"`
	AllowEdition                bool                 `json:"allowEdition"`
	IsCheckedIn                 bool                 `json:"isCheckedIn"`
	Marketplace                 Marketplace          `json:"marketplace"`
	AuthorizedDate              string               `json:"authorizedDate"`
	InvoicedDate                string               `json:"invoicedDate"`
}

// ItemTotal is one line of the order totals (Items, Discounts, Shipping, Tax...).
type ItemTotal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// OrderItem is a line item. Seller holds the id of an entry of Order.Sellers.
type OrderItem struct {
	UniqueID          string            `json:"uniqueId"`
	ID                string            `json:"id"`
	ProductID         string            `json:"productId"`
	Ean               string            `json:"ean"`
	LockID            string            `json:"lockId"`
	ItemAttachment    []json.RawMessage `json:"itemAttachment"`
	Attachments       []json.RawMessage `json:"attachments"`
	Quantity          int               `json:"quantity"`
	Seller            string            `json:"seller"`
	Name              string            `json:"name"`
	RefID             string            `json:"refId"`
	Price             int64             `json:"price"`
	ListPrice         int64             `json:"listPrice"`
	ManualPrice       json.RawMessage   `json:"manualPrice"`
	PriceTags         []PriceTag        `json:"priceTags"`
	ImageURL          string            `json:"imageUrl"`
	DetailURL         json.RawMessage   `json:"detailUrl"`
	Components        []json.RawMessage `json:"components"`
	BundleItems       []json.RawMessage `json:"bundleItems"`
	Params            []json.RawMessage `json:"params"`
	Offerings         []json.RawMessage `json:"offerings"`
	SellerSku         string            `json:"sellerSku"`
	PriceValidUntil   json.RawMessage   `json:"priceValidUntil"`
	Commission        float64           `json:"commission"`
	Tax               int64             `json:"tax"`
	PreSaleDate       json.RawMessage   `json:"preSaleDate"`
	AdditionalInfo    *AdditionalInfo   `json:"additionalInfo,omitempty"`
	MeasurementUnit   string            `json:"measurementUnit"`
	UnitMultiplier    float64           `json:"unitMultiplier"`
	SellingPrice      int64             `json:"sellingPrice"`
	IsGift            bool              `json:"isGift"`
	ShippingPrice     json.RawMessage   `json:"shippingPrice"`
	RewardValue       int64             `json:"rewardValue"`
	FreightCommission float64           `json:"freightCommission"`
	PriceDefinitions  json.RawMessage   `json:"priceDefinitions"`
	TaxCode           string            `json:"taxCode"`
	ProductCategories json.RawMessage   `json:"productCategories"`
}

// PriceTag is a price adjustment (discount, tax, surcharge) applied to an item.
type PriceTag struct {
	Name         string          `json:"name"`
	Value        int64           `json:"value"`
	IsPercentual bool            `json:"isPercentual"`
	Identifier   json.RawMessage `json:"identifier"`
	RawValue     float64         `json:"rawValue"`
}

type AdditionalInfo struct {
	BrandName             string          `json:"brandName"`
	BrandID               string          `json:"brandId"`
	CategoriesIDs         string          `json:"categoriesIds"`
	ProductClusterID      string          `json:"productClusterId"`
	CommercialConditionID string          `json:"commercialConditionId"`
	Dimension             Dimension       `json:"dimension"`
	OfferingInfo          json.RawMessage `json:"offeringInfo"`
	OfferingType          json.RawMessage `json:"offeringType"`
	OfferingTypeID        json.RawMessage `json:"offeringTypeId"`
}

type Dimension struct {
	Cubicweight float64 `json:"cubicweight"`
	Height      float64 `json:"height"`
	Length      float64 `json:"length"`
	Weight      float64 `json:"weight"`
	Width       float64 `json:"width"`
}

type ClientProfileDetail struct {
	CorporateDocument *string         `json:"corporateDocument,omitempty"`
	CorporateName     *string         `json:"corporateName,omitempty"`
	CorporatePhone    *string         `json:"corporatePhone,omitempty"`
	Document          string          `json:"document"`
	DocumentType      *string         `json:"documentType,omitempty"`
	Email             string          `json:"email"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Phone             string          `json:"phone"`
	StateInscription  *string         `json:"stateInscription,omitempty"`
	TradeName         *string         `json:"tradeName,omitempty"`
	UserProfileID     json.RawMessage `json:"userProfileId,omitempty"`
	IsCorporate       *bool           `json:"isCorporate,omitempty"`
}

// OrderSeller references the seller of one or more items.
// It is joined to catalog.Seller by id only.
type OrderSeller struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type CustomData struct {
	CustomApps []CustomApps `json:"customApps"`
}

type CustomApps struct {
	Fields json.RawMessage `json:"fields"`
	ID     string          `json:"id"`
	Major  int             `json:"major"`
}

type Marketplace struct {
	BaseURL     string `json:"baseURL"`
	IsCertified bool   `json:"isCertified"`
	Name        string `json:"name"`
}

type StorePreferencesData struct {
	CountryCode        string             `json:"countryCode"`
	CurrencyCode       string             `json:"currencyCode"`
	CurrencyFormatInfo CurrencyFormatInfo `json:"currencyFormatInfo"`
	CurrencyLocale     int                `json:"currencyLocale"`
	CurrencySymbol     string             `json:"currencySymbol"`
	TimeZone           string             `json:"timeZone"`
}

type CurrencyFormatInfo struct {
	CurrencyDecimalDigits    int    `json:"CurrencyDecimalDigits"`
	CurrencyDecimalSeparator string `json:"CurrencyDecimalSeparator"`
	CurrencyGroupSeparator   string `json:"CurrencyGroupSeparator"`
	CurrencyGroupSize        int    `json:"CurrencyGroupSize"`
	StartsWithCurrencySymbol bool   `json:"StartsWithCurrencySymbol"`
}

// Total returns the value of the totals line with the given id.
func (o *Order) Total(id string) (int64, bool) {
	for _, total := range o.Totals {
		if total.ID == id {
			return total.Value, true
		}
	}
	return 0, false
}

// Seller returns the seller entry referenced by an item.
func (o *Order) Seller(id string) (OrderSeller, bool) {
	for _, seller := range o.Sellers {
		if seller.ID == id {
			return seller, true
		}
	}
	return OrderSeller{}, false
}

// ItemFor resolves the positional itemIndex of a logistics entry.
// Indexes are only meaningful within the document they were read from.
func (o *Order) ItemFor(info LogisticsInfo) (OrderItem, bool) {
	if info.ItemIndex < 0 || info.ItemIndex >= len(o.Items) {
		return OrderItem{}, false
	}
	return o.Items[info.ItemIndex], true
}
