package routes

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/busmeme/busmeme/pkg/database"
	"github.com/busmeme/busmeme/pkg/meme"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func MemesRouter(router fiber.Router) {
	router.Get("/getMemeTemplates", getMemeTemplates)
	router.Post("/saveMemeDetails", saveMemeDetails)
	router.Post("/saveImage", saveImage)
	router.Get("/image/:imageLink", serveImage)
	router.Get("/getImages", getImages)
}

func getMemeTemplates(c *fiber.Ctx) error {
	templatesCollection := database.GetCollection("meme_templates")

	cursor, err := templatesCollection.Find(context.Background(), bson.M{})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	templates := []meme.Template{}
	if err := cursor.All(context.Background(), &templates); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(templates)
}

func saveMemeDetails(c *fiber.Ctx) error {
	var details meme.Details
	if err := c.BodyParser(&details); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not parse meme details",
		})
	}

	details.CreationDateTime = time.Now()

	detailsCollection := database.GetCollection("meme_details")

	_, err := detailsCollection.InsertOne(context.Background(), details)
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

func saveImage(c *fiber.Ctx) error {
	var image meme.Image
	if err := c.BodyParser(&image); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not parse image",
		})
	}

	if _, err := base64.StdEncoding.DecodeString(image.Data); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Image data must be base64 encoded",
		})
	}

	image.Link = uuid.New().String()
	image.CreationDateTime = time.Now()

	imagesCollection := database.GetCollection("images")

	_, err := imagesCollection.InsertOne(context.Background(), image)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"link": image.Link,
	})
}

func serveImage(c *fiber.Ctx) error {
	imagesCollection := database.GetCollection("images")

	var image meme.Image
	err := imagesCollection.FindOne(context.Background(), bson.M{"link": c.Params("imageLink")}).Decode(&image)

	if errors.Is(err, mongo.ErrNoDocuments) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "No such image",
		})
	} else if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	imageBytes, err := base64.StdEncoding.DecodeString(image.Data)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Stored image is not decodable",
		})
	}

	c.Set(fiber.HeaderContentType, image.ContentType)
	return c.Send(imageBytes)
}

func getImages(c *fiber.Ctx) error {
	imagesCollection := database.GetCollection("images")

	cursor, err := imagesCollection.Find(context.Background(), bson.M{})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	images := []meme.Image{}
	if err := cursor.All(context.Background(), &images); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	links := []string{}
	for _, image := range images {
		links = append(links, image.Link)
	}

	return c.JSON(links)
}
