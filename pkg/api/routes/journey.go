package routes

import (
	"context"
	"errors"
	"strconv"

	"github.com/busmeme/busmeme/pkg/translink"
	"github.com/gofiber/fiber/v2"
)

// JourneyPlanner is the downstream contract of the journey adapter.
type JourneyPlanner interface {
	GetJourneysBetween(ctx context.Context, startLat, startLng, destLat, destLng string, mode string, at int64, walkMax int) (*translink.Journey, error)
}

func JourneyRouter(router fiber.Router, planner JourneyPlanner) {
	router.Get("/:startLat/:startLng/:destLat/:destLng/:mode/:at/:walkMax", getJourneyBetween(planner))
}

func getJourneyBetween(planner JourneyPlanner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		at, err := strconv.ParseInt(c.Params("at"), 10, 64)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter at should be a Unix timestamp in seconds",
			})
		}

		walkMax, err := strconv.Atoi(c.Params("walkMax"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter walkMax should be a distance in metres",
			})
		}

		journey, err := planner.GetJourneysBetween(c.Context(),
			c.Params("startLat"), c.Params("startLng"),
			c.Params("destLat"), c.Params("destLng"),
			c.Params("mode"), at, walkMax)

		if err != nil {
			// No geocode match is a normal outcome - the client shows
			// "no journey found" when it gets null back.
			if errors.Is(err, translink.ErrNoJourney) {
				return c.JSON(nil)
			}

			var upstreamErr *translink.UpstreamError
			if errors.As(err, &upstreamErr) {
				if upstreamErr.Timeout() {
					c.SendStatus(fiber.StatusGatewayTimeout)
				} else {
					c.SendStatus(fiber.StatusBadGateway)
				}
				return c.JSON(fiber.Map{
					"error": upstreamErr.Error(),
				})
			}

			if errors.Is(err, translink.ErrMalformedResponse) {
				c.SendStatus(fiber.StatusBadGateway)
				return c.JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(journey)
	}
}
