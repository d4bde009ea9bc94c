package catalog

const (
	catalogURL       = "/api/catalog"
	catalogSystemURL = "/api/catalog_system"

	sellerListRoute = catalogSystemURL + "/pvt/seller/list"
)

func sellerRoute(sellerID string) string {
	return catalogSystemURL + "/pvt/seller/" + sellerID
}

func skuRoute(skuID string) string {
	return catalogURL + "/pvt/stockkeepingunit/" + skuID
}

func productRoute(productID string) string {
	return catalogURL + "/pvt/product/" + productID
}

func productSpecificationsRoute(productID string) string {
	return catalogSystemURL + "/pvt/products/" + productID + "/specification"
}
