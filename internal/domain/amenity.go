package domain

type Amenity struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}
