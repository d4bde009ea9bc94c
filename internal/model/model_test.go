package model

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func decodeFixture[T any](t *testing.T, name string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(readFixture(t, name), &v))
	return v
}

func TestOrder_RoundTrip(t *testing.T) {
	data := readFixture(t, "order.json")

	var order Order
	require.NoError(t, json.Unmarshal(data, &order))

	encoded, err := json.Marshal(order)
	require.NoError(t, err)

	assert.JSONEq(t, string(data), string(encoded))
}

func TestOrder_Decode(t *testing.T) {
	order := decodeFixture[Order](t, "order.json")

	assert.Equal(t, "1268540501456-01", order.OrderID)
	assert.Equal(t, "502556", order.Sequence.String())
	assert.Equal(t, int64(15290), order.Value)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, int64(6490), order.Items[0].SellingPrice)
	require.NotNil(t, order.Items[0].AdditionalInfo)
	assert.Equal(t, 15.0, order.Items[0].AdditionalInfo.Dimension.Weight)
	require.Len(t, order.Items[0].PriceTags, 1)
	assert.Equal(t, -10.0, order.Items[0].PriceTags[0].RawValue)

	courier := order.PackageAttachment.Packages[0].CourierStatus
	require.NotNil(t, courier)
	assert.Equal(t, "Delivered", courier.Status)
	assert.True(t, courier.Finished)
	assert.JSONEq(t, `[{"lastChange":"2024-09-09T12:00:00","city":"Rio de Janeiro","state":"RJ","description":"Entregue"}]`, string(courier.Data))
}

func TestOrder_SequenceKeepsWireForm(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		value   string
	}{
		{name: "number", payload: `{"sequence":502556}`, value: "502556"},
		{name: "string", payload: `{"sequence":"502556"}`, value: "502556"},
		{name: "null", payload: `{"sequence":null}`, value: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var order struct {
				Sequence Sequence `json:"sequence"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &order))
			assert.Equal(t, tc.value, order.Sequence.String())

			encoded, err := json.Marshal(order)
			require.NoError(t, err)
			assert.JSONEq(t, tc.payload, string(encoded))
		})
	}
}

func TestSequence(t *testing.T) {
	n, err := NewSequence(42).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	encoded, err := json.Marshal(NewSequence(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(encoded))

	var sequence Sequence
	assert.Error(t, json.Unmarshal([]byte(`true`), &sequence))

	require.NoError(t, json.Unmarshal([]byte(`"A-17"`), &sequence))
	_, err = sequence.Int64()
	assert.Error(t, err)
}

func TestOrder_TotalsReconcile(t *testing.T) {
	order := decodeFixture[Order](t, "order.json")

	var sum int64
	for _, total := range order.Totals {
		sum += total.Value
	}
	assert.Equal(t, order.Value, sum)

	shipping, ok := order.Total("Shipping")
	require.True(t, ok)
	assert.Equal(t, int64(2310), shipping)

	_, ok = order.Total("Interest")
	assert.False(t, ok)
}

func TestOrder_ItemLookups(t *testing.T) {
	order := decodeFixture[Order](t, "order.json")

	info := order.ShippingData.LogisticsInfo[0]
	item, ok := order.ItemFor(info)
	require.True(t, ok)
	assert.Equal(t, "1234568358", item.ID)

	_, ok = order.ItemFor(LogisticsInfo{ItemIndex: 5})
	assert.False(t, ok)
	_, ok = order.ItemFor(LogisticsInfo{ItemIndex: -1})
	assert.False(t, ok)

	seller, ok := order.Seller(item.Seller)
	require.True(t, ok)
	assert.Equal(t, "Loja Exemplo", seller.Name)

	_, ok = order.Seller("unknown")
	assert.False(t, ok)
}

func TestLogisticsInfo_DeliveryChannel(t *testing.T) {
	order := decodeFixture[Order](t, "order.json")
	info := order.ShippingData.LogisticsInfo[0]

	assert.False(t, info.IsPickupInPoint())
	require.Len(t, info.DeliveryIDs, 1)

	var delivery map[string]any
	require.NoError(t, json.Unmarshal(info.DeliveryIDs[0], &delivery))
	assert.Equal(t, "1_1", delivery["dockId"])
	assert.Equal(t, "197a56f", delivery["courierId"])

	channel := DeliveryChannelPickupInPoint
	assert.True(t, LogisticsInfo{DeliveryChannel: &channel}.IsPickupInPoint())
	assert.False(t, LogisticsInfo{}.IsPickupInPoint())
}

func TestPaymentData_ActiveTransaction(t *testing.T) {
	order := decodeFixture[Order](t, "order.json")

	transaction, ok := order.PaymentData.ActiveTransaction()
	require.True(t, ok)
	require.Len(t, transaction.Payments, 1)
	assert.Equal(t, `"bankInvoice"`, string(transaction.Payments[0].Group))
	assert.Equal(t, "null", string(transaction.Payments[0].CardNumber))

	_, ok = PaymentData{Transactions: []TransactionDetail{{IsActive: false}}}.ActiveTransaction()
	assert.False(t, ok)
}

func TestPackageAttachment_Delivered(t *testing.T) {
	order := decodeFixture[Order](t, "order.json")
	assert.True(t, order.PackageAttachment.Delivered())

	assert.False(t, PackageAttachment{}.Delivered())
	assert.False(t, PackageAttachment{Packages: []PackageDetail{{}}}.Delivered())
	assert.False(t, PackageAttachment{Packages: []PackageDetail{
		{CourierStatus: &CourierStatus{Finished: true}},
		{CourierStatus: &CourierStatus{Finished: false}},
	}}.Delivered())
}

func TestLogisticOutput_Decode(t *testing.T) {
	output := decodeFixture[LogisticOutput](t, "pickup_points.json")

	require.Len(t, output.Items, 2)
	assert.False(t, output.Truncated())
	assert.Equal(t, 100, output.Paging.PerPage)

	first := output.Items[0]
	assert.Equal(t, "1_botafogo", first.ID)
	assert.True(t, first.IsActive)
	require.NotNil(t, first.Distance)
	assert.Equal(t, 1.37, *first.Distance)
	require.NotNil(t, first.Address.Location)
	assert.Equal(t, -22.9468, first.Address.Location.Latitude)
	assert.Equal(t, "BRA", first.Address.Country.Acronym)
	require.Len(t, first.BusinessHours, 2)
	assert.Equal(t, "18:00:00", first.BusinessHours[0].ClosingTime)

	assert.False(t, output.Items[1].IsActive)
	assert.True(t, output.Items[1].IsThirdPartyPickup)

	output.Paging.Total = 250
	assert.True(t, output.Truncated())
}

func TestLogisticOutput_RoundTrip(t *testing.T) {
	data := readFixture(t, "pickup_points.json")

	var output LogisticOutput
	require.NoError(t, json.Unmarshal(data, &output))

	encoded, err := json.Marshal(output)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(encoded))
}

func TestLogisticDock_Decode(t *testing.T) {
	dock := decodeFixture[LogisticDock](t, "dock.json")

	detail, err := DecodeDock(dock)
	require.NoError(t, err)
	assert.Equal(t, "1_1", detail.ID)
	assert.Equal(t, []string{"1", "2"}, detail.SalesChannels)
	assert.Equal(t, []string{"1", "197a56f"}, detail.FreightTableIDs)

	var pickupStore map[string]any
	require.NoError(t, json.Unmarshal(detail.PickupStoreInfo, &pickupStore))
	assert.Equal(t, false, pickupStore["isPickupStore"])
}

func TestLogisticDock_KeepsUnknownFields(t *testing.T) {
	payload := `{"id":"1_1","priority":"high","hasPickupStore":true,"deliveryFromStore":false}`

	var dock LogisticDock
	require.NoError(t, json.Unmarshal([]byte(payload), &dock))

	encoded, err := json.Marshal(dock)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(encoded))

	detail, err := DecodeDock(dock)
	require.NoError(t, err)
	assert.Equal(t, "1_1", detail.ID)

	_, err = DecodeDock(LogisticDock(`{"id":42}`))
	assert.Error(t, err)
}

func TestSeller_Decode(t *testing.T) {
	seller := decodeFixture[Seller](t, "seller.json")

	assert.Equal(t, "1", seller.SellerID)
	assert.True(t, seller.Active())
	assert.Equal(t, 12.5, seller.ProductCommissionPercentage)
	assert.Nil(t, seller.UserName)
	require.NotNil(t, seller.SellerType)
	assert.Equal(t, 1, *seller.SellerType)

	assert.False(t, Seller{}.Active())
}

func TestSkuDetail_Decode(t *testing.T) {
	sku := decodeFixture[SkuDetail](t, "sku.json")

	assert.Equal(t, int64(1234568358), sku.ID)
	assert.Equal(t, int64(9429485), sku.ProductID)
	assert.Equal(t, 0.35, sku.PackagedWeightKg)
	assert.Equal(t, 1.0, sku.UnitMultiplier)
	assert.False(t, sku.IsKit)
}

func TestMetadataItem_Composition(t *testing.T) {
	item := decodeFixture[MetadataItem](t, "metadata_item.json")

	require.Len(t, item.AssemblyOptions, 2)
	assert.Nil(t, item.Ean)

	flavors := item.AssemblyOptions[0]
	assert.True(t, flavors.IsAssemblable())
	assert.Equal(t, 2, flavors.Composition.MaxQuantity)

	compositionItem, ok := flavors.Composition.Item("2000590")
	require.True(t, ok)
	assert.Equal(t, 1, compositionItem.InitialQuantity)

	_, ok = flavors.Composition.Item("missing")
	assert.False(t, ok)

	notes := item.AssemblyOptions[1]
	assert.False(t, notes.IsAssemblable())
	_, ok = notes.Composition.Item("2000590")
	assert.False(t, ok)
}

func TestFormatAmount(t *testing.T) {
	brl := StorePreferencesData{
		CurrencySymbol: "R$",
		CurrencyFormatInfo: CurrencyFormatInfo{
			CurrencyDecimalDigits:    2,
			CurrencyDecimalSeparator: ",",
			CurrencyGroupSeparator:   ".",
			CurrencyGroupSize:        3,
			StartsWithCurrencySymbol: true,
		},
	}
	usd := StorePreferencesData{
		CurrencySymbol: "$",
		CurrencyFormatInfo: CurrencyFormatInfo{
			CurrencyDecimalDigits:    2,
			CurrencyDecimalSeparator: ".",
			CurrencyGroupSeparator:   ",",
			CurrencyGroupSize:        3,
			StartsWithCurrencySymbol: true,
		},
	}
	eur := StorePreferencesData{
		CurrencySymbol: "€",
		CurrencyFormatInfo: CurrencyFormatInfo{
			CurrencyDecimalDigits:    2,
			CurrencyDecimalSeparator: ",",
			CurrencyGroupSeparator:   " ",
			CurrencyGroupSize:        3,
		},
	}
	clp := StorePreferencesData{
		CurrencySymbol: "$",
		CurrencyFormatInfo: CurrencyFormatInfo{
			CurrencyGroupSeparator:   ".",
			CurrencyGroupSize:        3,
			StartsWithCurrencySymbol: true,
		},
	}

	testCases := []struct {
		name   string
		prefs  StorePreferencesData
		amount int64
		want   string
	}{
		{"brl", brl, 123456, "R$ 1.234,56"},
		{"brl small", brl, 5, "R$ 0,05"},
		{"brl negative", brl, -123456, "-R$ 1.234,56"},
		{"usd million", usd, 100000000, "$ 1,000,000.00"},
		{"eur suffix", eur, 999999, "9 999,99 €"},
		{"no decimals", clp, 1234500, "$ 12.345"},
		{"no symbol", StorePreferencesData{}, 1050, "10"},
		{"max int64", brl, math.MaxInt64, "R$ 92.233.720.368.547.758,07"},
		{"min int64", brl, math.MinInt64, "-R$ 92.233.720.368.547.758,08"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.prefs.FormatAmount(tc.amount))
		})
	}
}

func TestFormatAmount_OrderFixture(t *testing.T) {
	order := decodeFixture[Order](t, "order.json")
	assert.Equal(t, "R$ 152,90", order.StorePreferencesData.FormatAmount(order.Value))
}
