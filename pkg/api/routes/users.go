package routes

import (
	"context"
	"time"

	"github.com/busmeme/busmeme/pkg/database"
	"github.com/busmeme/busmeme/pkg/meme"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func UsersRouter(router fiber.Router) {
	router.Post("/saveUser", saveUser)
}

func saveUser(c *fiber.Ctx) error {
	var user meme.User
	if err := c.BodyParser(&user); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not parse user",
		})
	}

	if user.Email == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "No email set",
		})
	}

	user.ModificationDateTime = time.Now()

	usersCollection := database.GetCollection("users")

	filter := bson.M{"email": user.Email}
	update := bson.M{"$set": user}
	opts := options.Update().SetUpsert(true)
	_, err := usersCollection.UpdateOne(context.Background(), filter, update, opts)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
