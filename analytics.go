package kitabu

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Analytics struct {
	TotalBooks           int             `json:"total_books"`
	TotalStudents        int             `json:"total_students"`
	ActiveBorrows        int             `json:"active_borrows"`
	OverdueCount         int             `json:"overdue_count"`
	CategoryDistribution []CategoryCount `json:"category_distribution,omitempty"`
}
