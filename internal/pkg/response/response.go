package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse wraps health and error payloads. Endpoint results are
// written flat with JSON.
type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageMethodNotAllowed    = "method not allowed"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

// Envelope writes a SemanticResponse. Out-of-range statuses become 500 and an
// empty message falls back to StatusMessage.
func Envelope(c fiber.Ctx, status int, message string, data interface{}) error {
	st := normalizeStatus(status)
	if message == "" {
		message = StatusMessage(st)
	}
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: message, Data: data})
}

// JSON writes body as-is without the envelope.
func JSON(c fiber.Ctx, status int, body interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(body)
}

func StatusMessage(status int) string {
	switch {
	case status == fiber.StatusOK:
		return MessageOK
	case status == fiber.StatusBadRequest:
		return MessageBadRequest
	case status == fiber.StatusNotFound:
		return MessageNotFound
	case status == fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case status >= 500:
		return MessageInternalServerError
	default:
		return MessageError
	}
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}
