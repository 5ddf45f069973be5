package domain

// GeofenceMatch is the outcome of resolving a coordinate against the active
// location set: which site accepted the coordinate and how far away it was.
type GeofenceMatch struct {
	LocationID     string  `json:"locationID"`
	LocationName   string  `json:"locationName"` // display name, "(Dinas)" suffixed for field assignments
	DistanceMeters float64 `json:"distanceMeters"`
}
