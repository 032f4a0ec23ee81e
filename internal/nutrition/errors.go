package nutrition

import "errors"

// Domain errors surfaced to the HTTP layer. Messages are user-facing and
// returned verbatim in error bodies, so they stay in Vietnamese.
var (
	ErrEmptyMessage    = errors.New("Tin nhắn không được để trống")
	ErrNotEnoughImages = errors.New("Cần ít nhất 2 ảnh")
	ErrNoImages        = errors.New("Chưa có ảnh")
	ErrNoRecognition   = errors.New("Không nhận diện được món ăn")
	ErrProfileNotFound = errors.New("Không tìm thấy người dùng")
	ErrUnknownWorkflow = errors.New("Workflow không tồn tại")
)
