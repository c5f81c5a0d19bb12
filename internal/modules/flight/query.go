package flight

import "fmt"

// BuildQuery turns a request into the web-search query. The token order is
// fixed so identical requests always produce identical queries.
func BuildQuery(req FlightSearchRequest) string {
	trip := fmt.Sprintf("one way %s", req.DepartDate)
	if req.ReturnDate != "" {
		trip = fmt.Sprintf("round trip %s to %s", req.DepartDate, req.ReturnDate)
	}
	return fmt.Sprintf("flights %s to %s %s %d adults %s prices", req.Origin, req.Destination, trip, req.Adults, req.Cabin)
}
