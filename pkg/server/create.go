package server

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fiberzerolog"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"awardvote/internal/admin"
)

func NewFiber() *fiber.App {
	app := fiber.New(fiber.Config{
		ProxyHeader:  "X-Real-Ip",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		Network:      "tcp4",
		ServerHeader: "awardvote",
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Use(fiberzerolog.New(fiberzerolog.Config{
		Logger: &log.Logger,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowCredentials: false,
		AllowMethods:     "GET, POST, OPTIONS",
		AllowHeaders:     "content-type, origin, x-request-id, " + admin.Header,
		MaxAge:           864000,
	}))

	return app
}

// ErrorHandler 统一返回 {"error": msg}，非 fiber 错误不暴露细节
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Error().Stack().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
