package handlers

import (
	"github.com/gofiber/fiber/v2"

	"awardvote/internal/models"
	"awardvote/internal/voting"
)

type BallotHandle struct {
	svc *voting.Service
}

type voteRequest struct {
	UserId       string `json:"userId"`
	NominationId int64  `json:"nominationId"`
	NomineeId    int64  `json:"nomineeId"`
}

func RegisterBallot(router fiber.Router, svc *voting.Service) {
	handler := BallotHandle{svc: svc}

	router.Get("/status", handler.Status)
	router.Get("/nominations", handler.Nominations)
	router.Get("/my-votes", handler.MyVotes)
	router.Post("/vote", handler.Vote)
	router.Post("/unvote", handler.Unvote)
	router.Get("/results", handler.Results)
}

// Status 当前投票阶段
func (h *BallotHandle) Status(ctx *fiber.Ctx) error {
	status, err := h.svc.Settings.Snapshot(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(status)
}

// Nominations 奖项及候选列表
func (h *BallotHandle) Nominations(ctx *fiber.Ctx) error {
	nominations, err := h.svc.Catalog.List(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"nominations": nominations})
}

// MyVotes 用户已投的票
func (h *BallotHandle) MyVotes(ctx *fiber.Ctx) error {
	votes, err := h.svc.Ledger.VotesForUser(ctx.UserContext(), ctx.Query("userId"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"votes": votes})
}

// Vote 投票或改票
func (h *BallotHandle) Vote(ctx *fiber.Ctx) error {
	var req voteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	err := h.svc.Ledger.Cast(ctx.UserContext(), req.UserId, req.NominationId, req.NomineeId)
	if err != nil {
		return respondError(ctx, err)
	}
	return success(ctx)
}

// Unvote 撤回投票
func (h *BallotHandle) Unvote(ctx *fiber.Ctx) error {
	var req voteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.Ledger.Retract(ctx.UserContext(), req.UserId, req.NominationId); err != nil {
		return respondError(ctx, err)
	}
	return success(ctx)
}

type resultsResponse struct {
	Results   []models.Winner `json:"results"`
	Winners   map[int64]int64 `json:"winners"`
	Published *bool           `json:"published,omitempty"`
}

// Results 公开的获奖结果
func (h *BallotHandle) Results(ctx *fiber.Ctx) error {
	winners, err := h.svc.Results.Published(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(resultsResponse{
		Results: winners,
		Winners: voting.WinnerMap(winners),
	})
}
