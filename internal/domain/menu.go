package domain

// MenuItem is a dish offered by the restaurant
type MenuItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Review is a customer testimonial
type Review struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
