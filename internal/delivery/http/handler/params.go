package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/rail-route-service/internal/pkg/errors"
)

// pathParam возвращает декодированный параметр пути.
// ID из OSM выглядят как node/123, клиент передаёт их как node%2F123.
func pathParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	value, err := url.PathUnescape(raw)
	if err != nil || value == "" {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{name: "required"})
	}
	return value, nil
}
