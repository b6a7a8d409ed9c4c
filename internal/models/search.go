package models

// SearchParams is what the header forwards on submit.
type SearchParams struct {
	Query    string
	Location string
}
