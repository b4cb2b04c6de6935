package dto

type ErrorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type DeleteResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}
