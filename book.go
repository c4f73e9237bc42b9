package kitabu

type Book struct {
	ID             string `json:"id,omitempty"`
	BookID         string `json:"book_id,omitempty"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	Category       string `json:"category,omitempty"`
	Subject        string `json:"subject,omitempty"`
	TotalCopies    int    `json:"total_copies"`
	BorrowedCopies int    `json:"borrowed_copies,omitempty"`
	Available      bool   `json:"available,omitempty"`
}

type BookList struct {
	Items []Book `json:"items"`
	Total int    `json:"total"`
}

// BookUpdate carries the mutable fields of a Book. Nil fields are left
// untouched by the API.
type BookUpdate struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Category    *string `json:"category,omitempty"`
	Subject     *string `json:"subject,omitempty"`
	TotalCopies *int    `json:"total_copies,omitempty"`
}
