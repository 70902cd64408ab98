package v1

import (
	"awardvote/api/v1/handlers"
	"awardvote/internal/admin"
	"awardvote/internal/voting"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, svc *voting.Service, gate admin.Authorizer) {
	handlers.RegisterHealth(app, svc)
	handlers.RegisterBallot(app, svc)
	handlers.RegisterAdmin(app.Group("/admin"), svc, gate)
}
