package controllers

import (
	"strconv"

	"fiber-bizapp/controllers/idgen"
	"fiber-bizapp/models"
	"fiber-bizapp/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(DB *gorm.DB) *NotificationController {
	return &NotificationController{DB: DB}
}

func (c *NotificationController) GetMyNotifications(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid user ID",
		})
	}

	var notifications []models.Notification
	if err := c.DB.Where("user_id = ?", uint(userID)).
		Order("created_at desc").
		Limit(100).
		Find(&notifications).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": notifications, "success": true})
}

func (c *NotificationController) CreateNotification(ctx *fiber.Ctx) error {
	var input struct {
		UserID  uint   `json:"user_id" validate:"required"`
		Subject string `json:"subject" validate:"required"`
		Body    string `json:"body" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	notification := models.Notification{
		ID:      types.SnowflakeID(idgen.GenerateID()),
		UserID:  input.UserID,
		Subject: input.Subject,
		Body:    input.Body,
	}

	if err := c.DB.Create(&notification).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Notification created successfully", "data": notification, "success": true})
}

func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid user ID",
		})
	}

	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	result := c.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, uint(userID)).
		Update("is_read", true)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Notification marked as read", "success": true})
}
