package domain

// Property is a real-estate listing.
type Property struct {
	PropertyID  string  `json:"propertyID"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price"`
	Location    string  `json:"location"`
	Rooms       *int32  `json:"rooms,omitempty"`
	Bathrooms   *int32  `json:"bathrooms,omitempty"`
	Area        *int32  `json:"area,omitempty"` // m²
	Timestamps
}
