package domain

// Registration is a client's booking of a trip (a Client_Trip row).
// The pair (ClientID, TripID) is unique.
type Registration struct {
	ClientID     int
	TripID       int
	RegisteredAt DateInt
	PaymentDate  *DateInt // nil until the registration is paid
}

// ClientTrip is one entry of a client's trip history: the trip itself plus
// the dates recorded on the registration. Trip.Countries is not populated.
type ClientTrip struct {
	Trip         Trip
	RegisteredAt DateInt
	PaymentDate  *DateInt
}
