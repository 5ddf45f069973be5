package dto

// Response is the envelope every presensi endpoint answers with. Domain
// rejections keep HTTP 200 and encode the failure here, matching the wire
// contract the mobile client expects.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK builds a success envelope carrying data.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage builds a success envelope carrying a message and data.
func OKMessage(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope with a human-readable message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
