package models

// Property is the row shape of the properties table.
type Property struct {
	PropertyID  string  `db:"property_id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Price       int64   `db:"price"`
	Location    string  `db:"location"`
	Rooms       *int32  `db:"rooms"`
	Bathrooms   *int32  `db:"bathrooms"`
	Area        *int32  `db:"area"`
	Timestamps
}
