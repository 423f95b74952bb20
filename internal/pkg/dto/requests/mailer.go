package requests

type EmailPayload struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Cc       []string `json:"cc,omitempty"`
	Bcc      []string `json:"bcc,omitempty"`
	HTMLCode string   `json:"html_code"`
	Encoded  bool     `json:"encoded"`
}

// Notification is published for the notification consumer (push, e-mail or SMS).
type Notification struct {
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"`
	ContractID string            `json:"contract_id,omitempty"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
}
