package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey — ключ request id в gin-контексте.
const RequestIDKey = "request_id"

// requestIDHeader — заголовок, в котором id приходит от клиента и возвращается в ответе.
const requestIDHeader = "X-Request-Id"

// RequestID присваивает каждому запросу id: берёт из заголовка X-Request-Id
// или генерирует новый UUID. Id кладётся в контекст и в заголовок ответа.
func RequestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDKey, id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}
