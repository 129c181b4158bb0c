package model

// LogEntry is one parsed log line. Values are never modified after parsing.
type LogEntry struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Level     string `json:"level" yaml:"level"`
	Message   string `json:"message" yaml:"message"`
}

// String renders the entry as "timestamp level message".
func (e LogEntry) String() string {
	return e.Timestamp + " " + e.Level + " " + e.Message
}
