package controllers

import (
	"fiber-bizapp/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(DB *gorm.DB) *ModuleController {
	return &ModuleController{DB: DB}
}

func (c *ModuleController) GetAllModules(ctx *fiber.Ctx) error {
	var modules []models.AppModule
	if err := c.DB.Order("slug asc").Find(&modules).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": modules, "success": true})
}

func (c *ModuleController) CreateModule(ctx *fiber.Ctx) error {
	var input struct {
		Slug        string `json:"slug" validate:"required,min=2"`
		Name        string `json:"name" validate:"required"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	module := models.AppModule{
		Slug:        input.Slug,
		Name:        input.Name,
		Icon:        input.Icon,
		Description: input.Description,
		IsActive:    true,
		CreatedBy:   localUserID(ctx),
	}

	if err := c.DB.Create(&module).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Module created successfully", "data": module, "success": true})
}

func (c *ModuleController) UpdateModule(ctx *fiber.Ctx) error {
	moduleID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var module models.AppModule
	if err := c.DB.First(&module, moduleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name        string  `json:"name"`
		Icon        *string `json:"icon"`
		Description string  `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.Name != "" {
		module.Name = input.Name
	}
	if input.Icon != nil {
		module.Icon = *input.Icon
	}
	if input.Description != "" {
		module.Description = input.Description
	}
	if input.IsActive != nil {
		module.IsActive = *input.IsActive
	}
	module.UpdatedBy = localUserID(ctx)

	if err := c.DB.Save(&module).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Module updated successfully", "data": module, "success": true})
}

func (c *ModuleController) DeleteModule(ctx *fiber.Ctx) error {
	moduleID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var module models.AppModule
	if err := c.DB.First(&module, moduleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&module).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Module deleted successfully", "success": true})
}
