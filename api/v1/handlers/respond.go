package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"awardvote/internal/voting"
)

func success(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

func fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// respondError 业务错误映射为 400/403，其余记录日志并返回 500
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, voting.ErrMissingFields),
		errors.Is(err, voting.ErrInvalidSettingKey),
		errors.Is(err, voting.ErrInvalidSettingValue),
		errors.Is(err, voting.ErrNomineeNotFound),
		errors.Is(err, voting.ErrNomineeMismatch):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, voting.ErrVotingClosed),
		errors.Is(err, voting.ErrResultsNotPublished):
		return fail(c, fiber.StatusForbidden, err.Error())
	}

	log.Error().Stack().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")
	return fail(c, fiber.StatusInternalServerError, "internal server error")
}
