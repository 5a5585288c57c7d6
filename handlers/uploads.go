package handlers

import (
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadDir is where receipt/screenshot images land. Set from config at
// startup; served statically under /uploads.
var UploadDir = "./uploads"

// maxImageWidth caps stored images; anything wider gets downscaled.
const maxImageWidth = 1600

// UploadImage accepts a multipart image (field "file"), normalizes it to
// JPEG, downscales oversized uploads and returns the public URL.
func UploadImage(c *fiber.Ctx) error {
	if _, ok := requireUserID(c); !ok {
		return unauthorized(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read upload"})
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported image format"})
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		log.Printf("Failed to create upload dir: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store upload"})
	}

	name := uuid.New().String() + ".jpg"
	if err := imaging.Save(img, filepath.Join(UploadDir, name), imaging.JPEGQuality(85)); err != nil {
		log.Printf("Failed to save upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store upload"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": "/uploads/" + name})
}
