package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}

// SubmitResponse is the body of every /api/submit-form reply.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
