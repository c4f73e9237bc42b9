package kitabu

type Student struct {
	ID              string `json:"id,omitempty"`
	AdmissionNumber string `json:"admission_number"`
	FullName        string `json:"full_name"`
	ClassID         string `json:"class_id,omitempty"`
	ClassName       string `json:"class_name,omitempty"`
	Stream          string `json:"stream,omitempty"`
	FullClass       string `json:"full_class,omitempty"`
	IsCleared       bool   `json:"is_cleared,omitempty"`
}

type StudentList struct {
	Items []Student `json:"items"`
	Total int       `json:"total"`
}

// StudentListOptions narrows a student listing. Empty filters are omitted
// from the query string and a zero Limit defaults to 100.
type StudentListOptions struct {
	Skip     int
	Limit    int
	Search   string
	ClassID  string
	StreamID string
}

type StudentUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	ClassID  *string `json:"class_id,omitempty"`
	StreamID *string `json:"stream_id,omitempty"`
}
