package handler

// contactRequest is the POST /api/contact body. Subject is optional here;
// the web form requires it, but the server tolerates its absence.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// contactResponse is the endpoint's envelope for both outcomes. Success
// carries message and the provider's id; failure carries error.
type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}
