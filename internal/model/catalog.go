package model

// Seller is a merchant registration record of the catalog.
type Seller struct {
	SellerID                    string  `json:"SellerId"`
	Name                        string  `json:"Name"`
	Email                       string  `json:"Email"`
	Description                 *string `json:"Description,omitempty"`
	ExchangeReturnPolicy        *string `json:"ExchangeReturnPolicy,omitempty"`
	DeliveryPolicy              *string `json:"DeliveryPolicy,omitempty"`
	UseHybridPaymentOptions     bool    `json:"UseHybridPaymentOptions"`
	UserName                    *string `json:"UserName,omitempty"`
	Password                    *string `json:"Password,omitempty"`
	SecutityPrivacyPolicy       *string `json:"SecutityPrivacyPolicy,omitempty"`
	CNPJ                        *string `json:"CNPJ,omitempty"`
	CSCIdentification           string  `json:"CSCIdentification"`
	ArchiveID                   *string `json:"ArchiveId,omitempty"`
	URLLogo                     *string `json:"UrlLogo,omitempty"`
	ProductCommissionPercentage float64 `json:"ProductCommissionPercentage"`
	FreightCommissionPercentage float64 `json:"FreightCommissionPercentage"`
	FulfillmentEndpoint         string  `json:"FulfillmentEndpoint"`
	CatalogSystemEndpoint       string  `json:"CatalogSystemEndpoint"`
	IsActive                    *bool   `json:"IsActive,omitempty"`
	FulfillmentSellerID         *string `json:"FulfillmentSellerId,omitempty"`
	SellerType                  *int    `json:"SellerType,omitempty"`
	IsBetterScope               *bool   `json:"IsBetterScope,omitempty"`
}

// Active reports the activation flag; sellers without one are inactive.
func (s Seller) Active() bool {
	return s.IsActive != nil && *s.IsActive
}

type Product struct {
	ID    int64  `json:"Id"`
	RefID string `json:"RefId"`
	Name  string `json:"Name"`
}

type ProductSpecification struct {
	Value []string `json:"Value"`
	ID    int64    `json:"Id"`
	Name  string   `json:"Name"`
}

type SKU struct {
	ID    int64  `json:"Id"`
	Name  string `json:"Name"`
	RefID string `json:"RefId"`
}

// SkuDetail is the full stock keeping unit record with its physical data.
type SkuDetail struct {
	ID                    int64   `json:"id"`
	ProductID             int64   `json:"ProductId"`
	IsActive              bool    `json:"IsActive"`
	Name                  string  `json:"Name"`
	RefID                 int64   `json:"RefId"`
	PackagedHeight        float64 `json:"PackagedHeight"`
	PackagedLength        float64 `json:"PackagedLength"`
	PackagedWidth         float64 `json:"PackagedWidth"`
	PackagedWeightKg      float64 `json:"PackagedWeightKg"`
	Height                float64 `json:"Height"`
	Length                float64 `json:"Length"`
	WeightKg              float64 `json:"WeightKg"`
	Width                 float64 `json:"Width"`
	CubicWeight           float64 `json:"CubicWeight"`
	IsKit                 bool    `json:"IsKit"`
	CreationDate          string  `json:"CreationDate"`
	RewardValue           string  `json:"RewardValue"`
	EstimatedDateArrival  string  `json:"EstimatedDateArrival"`
	ManufacturerCode      string  `json:"ManufacturerCode"`
	CommercialConditionID int64   `json:"CommercialConditionId"`
	MeasurementUnit       float64 `json:"MeasurementUnit"`
	UnitMultiplier        float64 `json:"UnitMultiplier"`
	ModalType             string  `json:"ModalType"`
	KitItensSellApart     string  `json:"KitItensSellApart"`
	Videos                string  `json:"Videos"`
}

// MetadataItem describes an item together with its assembly options.
type MetadataItem struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	ImageURL        string           `json:"imageUrl"`
	DetailURL       string           `json:"detailUrl"`
	Seller          string           `json:"seller"`
	AssemblyOptions []AssemblyOption `json:"assemblyOptions"`
	SkuName         string           `json:"skuName"`
	ProductID       string           `json:"productId"`
	RefID           string           `json:"refId"`
	Ean             *string          `json:"ean"`
}

type CompositionItem struct {
	ID              string `json:"id"`
	MinQuantity     int    `json:"minQuantity"`
	MaxQuantity     int    `json:"maxQuantity"`
	InitialQuantity int    `json:"initialQuantity"`
	PriceTable      string `json:"priceTable"`
	Seller          string `json:"seller"`
}

// Composition bounds how many bundled sub-items an assembly option takes.
type Composition struct {
	MinQuantity int               `json:"minQuantity"`
	MaxQuantity int               `json:"maxQuantity"`
	Items       []CompositionItem `json:"items"`
}

type AssemblyOption struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Composition *Composition `json:"composition"`
}

// IsAssemblable reports whether the option carries a composition.
func (a AssemblyOption) IsAssemblable() bool {
	return a.Composition != nil
}

// Item returns the composition entry with the given id.
func (c *Composition) Item(id string) (CompositionItem, bool) {
	if c == nil {
		return CompositionItem{}, false
	}
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return CompositionItem{}, false
}
