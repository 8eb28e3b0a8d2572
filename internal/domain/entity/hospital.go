package entity

// Hospital represents a hospital record in the catalog. Records are
// immutable after the catalog is seeded.
type Hospital struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Location string   `json:"location"`
	Services []string `json:"services"`
	Contact  string   `json:"contact"`
	Rating   float64  `json:"rating"`
}
