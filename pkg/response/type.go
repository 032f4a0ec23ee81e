package response

// ErrResp is the standard error body for every non-2xx response.
type ErrResp struct {
	Error string `json:"error"`
}

const (
	// DefaultErrorMessage is returned when an internal error carries no message.
	DefaultErrorMessage = "Lỗi server"

	// NotFoundMessage is the fixed body for unmatched routes.
	NotFoundMessage = "Endpoint không tồn tại"
)
