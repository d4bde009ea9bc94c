package logistics

import (
	"fmt"
	"strconv"
)

const baseURL = "/api/logistics"

// Path segments are interpolated as given; callers pass valid segments.
func docksRoute(dockID string) string {
	return baseURL + "/pvt/configuration/docks/" + dockID
}

func pickupByIDRoute(id string) string {
	return baseURL + "/pvt/configuration/pickuppoints/" + id
}

const (
	shippingRoute     = baseURL + "/pub/shipping/configuration"
	pickupPointsRoute = baseURL + "/pvt/configuration/pickuppoints/_search"
)

// nearPickupPointsRoute always asks for the first page of PickupSearchPageSize
// results.
func nearPickupPointsRoute(lat, long string, maxDistance float64) string {
	return fmt.Sprintf("%s?page=1&pageSize=%d&lat=%s&lon=%s&maxDistance=%s",
		pickupPointsRoute, PickupSearchPageSize, lat, long, strconv.FormatFloat(maxDistance, 'f', -1, 64))
}
