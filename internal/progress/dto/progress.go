package dto

type SaveProgressRequest struct {
	Email          string   `json:"email"`
	Memorized      []string `json:"memorized"`
	Reviewed       []string `json:"reviewed"`
	Bookmarked     []string `json:"bookmarked"`
	Recited        []int    `json:"recited"`
	Language       string   `json:"language"`
	Reciter        string   `json:"reciter"`
	LastViewMode   string   `json:"lastViewMode"`
	LastVerseIndex *int     `json:"lastVerseIndex"`
}

type LoadProgressResponse struct {
	Success        bool     `json:"success"`
	Memorized      []string `json:"memorized"`
	Reviewed       []string `json:"reviewed"`
	Bookmarked     []string `json:"bookmarked"`
	Recited        []int    `json:"recited"`
	Language       string   `json:"language"`
	Reciter        string   `json:"reciter"`
	LastViewMode   string   `json:"lastViewMode"`
	LastVerseIndex int      `json:"lastVerseIndex"`
}
