package api

import (
	"github.com/busmeme/busmeme/pkg/api/routes"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string, planner routes.JourneyPlanner) error {
	webApp := CreateServer(planner)

	return webApp.Listen(listen)
}

// CreateServer wires the route table. The paths match what the canvas
// client requests.
func CreateServer(planner routes.JourneyPlanner) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("/version", routes.APIVersion)

	routes.JourneyRouter(webApp.Group("/tl"), planner)

	routes.MemesRouter(webApp)
	routes.UsersRouter(webApp)

	return webApp
}
