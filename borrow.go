package kitabu

type BorrowRecord struct {
	ID         string `json:"id"`
	Book       string `json:"book"`
	Student    string `json:"student"`
	Class      string `json:"class,omitempty"`
	BorrowDate string `json:"borrow_date"`
	DueDate    string `json:"due_date,omitempty"`
	ReturnDate string `json:"return_date,omitempty"`
	Status     string `json:"status"`
}

type BorrowRecordList struct {
	Items []BorrowRecord `json:"items"`
	Total int            `json:"total"`
}
