package models

// Job is one posting shown in the home feed.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	JoiningDate string `json:"joining_date"`
	MapURL      string `json:"map_url"`
	PayLabel    string `json:"pay_label"`
}

// HeroImage is one item of the hero carousel.
type HeroImage struct {
	Ref string `json:"ref"`
	Alt string `json:"alt,omitempty"`
}
