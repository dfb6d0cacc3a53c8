package transport

// Response is the generic success/message envelope returned by mutating
// endpoints.
type Response struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}
