package chatbot

import "time"

// Entry is one knowledge-base article the HR chatbot can answer from.
type Entry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Keywords  []string  `json:"keywords"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Match is a scored search hit.
type Match struct {
	Entry Entry   `json:"entry"`
	Score float64 `json:"score"`
}
