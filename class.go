package kitabu

type Class struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type Stream struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	ClassID string `json:"class_id"`
}
