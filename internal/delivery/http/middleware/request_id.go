package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDHeader - заголовок для корреляции запросов
const RequestIDHeader = fiber.HeaderXRequestID

const requestIDKey = "requestid"

// RequestID берёт X-Request-ID клиента или генерирует uuid
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     RequestIDHeader,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})
}

// RequestIDFromCtx возвращает id текущего запроса или пустую строку
func RequestIDFromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
