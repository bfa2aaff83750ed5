package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// HeaderIdempotencyKey cabecera opcional en POST /api/items/:id/adjust-stock.
const HeaderIdempotencyKey = "Idempotency-Key"

// RequestLogger registra cada petición con método, ruta, estado, latencia y usuario.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		if reqErr, ok := c.Locals(localError).(error); ok {
			ev = ev.Err(reqErr)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("http request")
		return err
	}
}

// IdempotencyStore guarda respuestas por clave de idempotencia (Redis en producción).
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Lookup(ctx context.Context, key string) (status int, body []byte, found bool, err error)
	Complete(ctx context.Context, key string, status int, body []byte) error
	Release(ctx context.Context, key string) error
}

// Idempotency repite la respuesta guardada cuando el mismo usuario reenvía la misma
// Idempotency-Key a la misma ruta. Solo se guardan respuestas 2xx; los errores liberan la
// clave. Sin cabecera, o si el store falla al reservar, la petición sigue sin idempotencia.
func Idempotency(store IdempotencyStore, log *logger.Logger) fiber.Handler {
	log = log.Component("idempotency")
	return func(c *fiber.Ctx) error {
		key := c.Get(HeaderIdempotencyKey)
		if store == nil || key == "" {
			return c.Next()
		}
		ctx := c.UserContext()
		scoped := GetUserID(c) + ":" + c.Path() + ":" + key

		reserved, err := store.Reserve(ctx, scoped)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotency store no disponible")
			return c.Next()
		}
		if !reserved {
			status, body, found, err := store.Lookup(ctx, scoped)
			if err == nil && found {
				c.Set("Idempotent-Replayed", "true")
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.Status(status).Send(body)
			}
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "petición con la misma Idempotency-Key en curso"})
		}

		// La clave se libera salvo que se guarde la respuesta, también si el handler entra en pánico.
		completed := false
		defer func() {
			if !completed {
				if err := store.Release(ctx, scoped); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("no se pudo liberar la clave idempotente")
				}
			}
		}()

		if err := c.Next(); err != nil {
			return err
		}
		status := c.Response().StatusCode()
		if status >= 200 && status < 300 {
			body := append([]byte(nil), c.Response().Body()...)
			if err := store.Complete(ctx, scoped, status, body); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar la respuesta idempotente")
				return nil
			}
			completed = true
		}
		return nil
	}
}
