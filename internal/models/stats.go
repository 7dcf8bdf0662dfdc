package models

// CategoryStats counts visited and planned destinations of one category.
type CategoryStats struct {
	Category Category `json:"category"`
	Visited  int      `json:"visited"`
	Planned  int      `json:"planned"`
}

// DestinationStats summarizes a user's destinations.
type DestinationStats struct {
	Total      int             `json:"total"`
	Visited    int             `json:"visited"`
	Planned    int             `json:"planned"`
	ByCategory []CategoryStats `json:"byCategory"`
}
