package model

import "encoding/json"

// PackageAttachment lists the packages an order was shipped in.
type PackageAttachment struct {
	Packages []PackageDetail `json:"packages"`
}

type PackageDetail struct {
	Items           []ItemPackage   `json:"items"`
	Courier         string          `json:"courier"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	InvoiceValue    int64           `json:"invoiceValue"`
	InvoiceURL      string          `json:"invoiceUrl"`
	IssuanceDate    string          `json:"issuanceDate"`
	TrackingNumber  string          `json:"trackingNumber"`
	InvoiceKey      json.RawMessage `json:"invoiceKey"`
	TrackingURL     string          `json:"trackingUrl"`
	EmbeddedInvoice string          `json:"embeddedInvoice"`
	Type            string          `json:"type"`
	CourierStatus   *CourierStatus  `json:"courierStatus"`
	Cfop            json.RawMessage `json:"cfop"`
}

// CourierStatus is the carrier's view of a package. Data is the carrier's
// own payload and has no fixed schema.
type CourierStatus struct {
	Status   string          `json:"status"`
	Finished bool            `json:"finished"`
	Data     json.RawMessage `json:"data"`
}

type ItemPackage struct {
	ItemIndex      int     `json:"itemIndex"`
	Quantity       int     `json:"quantity"`
	Price          int64   `json:"price"`
	Description    string  `json:"description"`
	UnitMultiplier float64 `json:"unitMultiplier"`
}

// Delivered reports whether every package reached its final courier status.
// An order without packages is not delivered.
func (p PackageAttachment) Delivered() bool {
	if len(p.Packages) == 0 {
		return false
	}
	for _, pkg := range p.Packages {
		if pkg.CourierStatus == nil || !pkg.CourierStatus.Finished {
			return false
		}
	}
	return true
}
