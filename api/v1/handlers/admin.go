package handlers

import (
	"runtime"

	"github.com/gofiber/fiber/v2"

	"awardvote/internal/admin"
	"awardvote/internal/models"
	"awardvote/internal/voting"
)

type AdminHandle struct {
	svc  *voting.Service
	gate admin.Authorizer
}

type settingRequest struct {
	Key   models.SettingKey `json:"key"`
	Value any               `json:"value"`
}

func RegisterAdmin(router fiber.Router, svc *voting.Service, gate admin.Authorizer) {
	handler := AdminHandle{svc: svc, gate: gate}

	router.Use(handler.Verify)

	router.Get("/status", handler.GetStatus)
	router.Post("/status", handler.SetStatus)
	router.Get("/results", handler.Results)
	router.Get("/system/info", handler.SystemInfo)
}

// Verify 校验管理员令牌
func (h *AdminHandle) Verify(c *fiber.Ctx) error {
	if h.gate == nil || !h.gate.Authorize(c.Get(admin.Header)) {
		return fail(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}

// GetStatus 读取阶段开关
func (h *AdminHandle) GetStatus(ctx *fiber.Ctx) error {
	status, err := h.svc.Settings.Snapshot(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(status)
}

// SetStatus 修改阶段开关
func (h *AdminHandle) SetStatus(ctx *fiber.Ctx) error {
	var req settingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if !req.Key.Valid() {
		return respondError(ctx, voting.ErrInvalidSettingKey)
	}
	value, ok := voting.ParseFlag(req.Value)
	if !ok {
		return respondError(ctx, voting.ErrInvalidSettingValue)
	}

	if err := h.svc.Settings.Set(ctx.UserContext(), req.Key, value); err != nil {
		return respondError(ctx, err)
	}
	return success(ctx)
}

// Results 未公开时也可查看结果
func (h *AdminHandle) Results(ctx *fiber.Ctx) error {
	published, err := h.svc.Settings.ResultsPublished(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	winners, err := h.svc.Results.All(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(resultsResponse{
		Results:   winners,
		Winners:   voting.WinnerMap(winners),
		Published: &published,
	})
}

// SystemInfo 获取服务器信息
func (h *AdminHandle) SystemInfo(ctx *fiber.Ctx) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return ctx.JSON(fiber.Map{
		"go_version": runtime.Version(),
		"cpu_num":    runtime.NumCPU(),
		"goroutines": runtime.NumGoroutine(),
		"heap_alloc": m.HeapAlloc,
		"sys":        m.Sys,
	})
}
