package model

import "encoding/json"

type PaymentData struct {
	Transactions []TransactionDetail `json:"transactions"`
}

type TransactionDetail struct {
	IsActive      bool            `json:"isActive"`
	TransactionID json.RawMessage `json:"transactionId"`
	MerchantName  json.RawMessage `json:"merchantName"`
	Payments      []PaymentDetail `json:"payments"`
}

// PaymentDetail is one payment attempt. Card data is passed through as
// received and never inspected.
type PaymentDetail struct {
	ID                 json.RawMessage `json:"id"`
	PaymentSystem      string          `json:"paymentSystem"`
	PaymentSystemName  string          `json:"paymentSystemName"`
	Value              int64           `json:"value"`
	Installments       int             `json:"installments"`
	ReferenceValue     int64           `json:"referenceValue"`
	CardHolder         json.RawMessage `json:"cardHolder"`
	CardNumber         json.RawMessage `json:"cardNumber"`
	FirstDigits        json.RawMessage `json:"firstDigits"`
	LastDigits         json.RawMessage `json:"lastDigits"`
	Cvv2               json.RawMessage `json:"cvv2"`
	ExpireMonth        json.RawMessage `json:"expireMonth"`
	ExpireYear         json.RawMessage `json:"expireYear"`
	URL                json.RawMessage `json:"url"`
	GiftCardID         json.RawMessage `json:"giftCardId"`
	GiftCardName       json.RawMessage `json:"giftCardName"`
	GiftCardCaption    json.RawMessage `json:"giftCardCaption"`
	RedemptionCode     json.RawMessage `json:"redemptionCode"`
	Group              json.RawMessage `json:"group"`
	Tid                json.RawMessage `json:"tid"`
	DueDate            json.RawMessage `json:"dueDate"`
	ConnectorResponses json.RawMessage `json:"connectorResponses"`
}

// ActiveTransaction returns the transaction currently in effect, if any.
func (p PaymentData) ActiveTransaction() (TransactionDetail, bool) {
	for _, transaction := range p.Transactions {
		if transaction.IsActive {
			return transaction, true
		}
	}
	return TransactionDetail{}, false
}
