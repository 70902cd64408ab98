package handlers

import (
	"github.com/gofiber/fiber/v2"

	"awardvote/internal/voting"
)

type HealthHandle struct {
	svc *voting.Service
}

func RegisterHealth(router fiber.Router, svc *voting.Service) {
	handler := HealthHandle{svc: svc}

	router.Get("/", handler.Root)
	router.Get("/test-db", handler.TestDB)
}

// Root 存活检查
func (h *HealthHandle) Root(ctx *fiber.Ctx) error {
	return ctx.SendString("awardvote API v1")
}

// TestDB 返回数据库当前时间
func (h *HealthHandle) TestDB(ctx *fiber.Ctx) error {
	now, err := h.svc.StoreTime(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"time": now})
}
