package kitabu

import "time"

type LogEntry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Level      string    `json:"level"`
	Action     string    `json:"action"`
	Details    string    `json:"details,omitempty"`
	UserEmail  string    `json:"user_email,omitempty"`
	TargetUser string    `json:"target_user,omitempty"`
}

type LogStats struct {
	TotalEvents      int `json:"total_events"`
	SecurityAlerts   int `json:"security_alerts"`
	CriticalFailures int `json:"critical_failures"`
}

type LogPage struct {
	Items []LogEntry `json:"items"`
	Stats LogStats   `json:"stats"`
}
