package controllers

import (
	"strconv"

	"fiber-bizapp/models"
	"fiber-bizapp/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuLocationController struct {
	DB *gorm.DB
}

func NewMenuLocationController(DB *gorm.DB) *MenuLocationController {
	return &MenuLocationController{DB: DB}
}

func (lc *MenuLocationController) companyScope(ctx *fiber.Ctx) *uint {
	if companyID, ok := ctx.Locals("companyID").(float64); ok {
		id := uint(companyID)
		return &id
	}
	return nil
}

func (lc *MenuLocationController) GetAllLocations(ctx *fiber.Ctx) error {
	query := lc.DB.Order("name asc")
	if companyID := lc.companyScope(ctx); companyID != nil {
		query = query.Where("company_id = ? OR company_id IS NULL", *companyID)
	}

	var locations []models.MenuLocation
	if err := query.Find(&locations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": locations, "success": true})
}

func (lc *MenuLocationController) CreateLocation(ctx *fiber.Ctx) error {
	var input struct {
		Name       string `json:"name" validate:"required,min=2"`
		Label      string `json:"label" validate:"required"`
		LayoutType string `json:"layout_type"`
		MaxDepth   int    `json:"max_depth"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.MaxDepth <= 0 {
		input.MaxDepth = 3
	}
	if input.LayoutType == "" {
		input.LayoutType = "vertical"
	}

	location := models.MenuLocation{
		Name:       input.Name,
		CompanyID:  lc.companyScope(ctx),
		Label:      input.Label,
		LayoutType: input.LayoutType,
		MaxDepth:   input.MaxDepth,
		IsActive:   true,
		CreatedBy:  localUserID(ctx),
	}

	if err := lc.DB.Create(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(lc.DB, uint(localUserID(ctx)), "create", "menu_location", strconv.Itoa(int(location.ID)), location.Name)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Location created successfully", "data": location, "success": true})
}

func (lc *MenuLocationController) UpdateLocation(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var location models.MenuLocation
	if err := lc.DB.First(&location, locationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Label      string `json:"label"`
		LayoutType string `json:"layout_type"`
		MaxDepth   *int   `json:"max_depth"`
		IsActive   *bool  `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.Label != "" {
		location.Label = input.Label
	}
	if input.LayoutType != "" {
		location.LayoutType = input.LayoutType
	}
	if input.MaxDepth != nil && *input.MaxDepth > 0 {
		location.MaxDepth = *input.MaxDepth
	}
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}
	location.UpdatedBy = localUserID(ctx)

	if err := lc.DB.Save(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Location updated successfully", "data": location, "success": true})
}

func (lc *MenuLocationController) DeleteLocation(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var location models.MenuLocation
	if err := lc.DB.First(&location, locationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := lc.DB.Delete(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(lc.DB, uint(localUserID(ctx)), "delete", "menu_location", strconv.Itoa(locationID), location.Name)

	return ctx.JSON(fiber.Map{"message": "Location deleted successfully", "success": true})
}

func (lc *MenuLocationController) GetAssignments(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	query := lc.DB.Where("location_id = ?", locationID).
		Order("priority asc, id asc").
		Preload("Menu")
	if companyID := lc.companyScope(ctx); companyID != nil {
		query = query.Where("company_id = ? OR company_id IS NULL", *companyID)
	}

	var assignments []models.MenuAssignment
	if err := query.Find(&assignments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": assignments, "success": true})
}

func (lc *MenuLocationController) CreateAssignment(ctx *fiber.Ctx) error {
	locationID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		MenuID     uint   `json:"menu_id" validate:"required"`
		AssignType string `json:"assign_type" validate:"required,oneof=user role branch default"`
		TargetID   string `json:"target_id"`
		Priority   int    `json:"priority"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.AssignType != models.AssignTypeDefault && input.TargetID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "target_id is required for " + input.AssignType + " assignments",
		})
	}

	var location models.MenuLocation
	if err := lc.DB.First(&location, locationID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}
	var menu models.Menu
	if err := lc.DB.First(&menu, input.MenuID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
	}

	assignment := models.MenuAssignment{
		LocationID: location.ID,
		MenuID:     menu.ID,
		AssignType: input.AssignType,
		TargetID:   input.TargetID,
		Priority:   input.Priority,
		CompanyID:  lc.companyScope(ctx),
		IsActive:   true,
		CreatedBy:  localUserID(ctx),
	}

	if err := lc.DB.Create(&assignment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(lc.DB, uint(localUserID(ctx)), "create", "menu_assignment", strconv.Itoa(int(assignment.ID)), assignment.AssignType)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Assignment created successfully", "data": assignment, "success": true})
}

func (lc *MenuLocationController) UpdateAssignment(ctx *fiber.Ctx) error {
	assignmentID, err := ctx.ParamsInt("assignmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var assignment models.MenuAssignment
	if err := lc.DB.First(&assignment, assignmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		MenuID   *uint   `json:"menu_id"`
		TargetID *string `json:"target_id"`
		Priority *int    `json:"priority"`
		IsActive *bool   `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.MenuID != nil {
		var menu models.Menu
		if err := lc.DB.First(&menu, *input.MenuID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		assignment.MenuID = menu.ID
	}
	if input.TargetID != nil {
		assignment.TargetID = *input.TargetID
	}
	if input.Priority != nil {
		assignment.Priority = *input.Priority
	}
	if input.IsActive != nil {
		assignment.IsActive = *input.IsActive
	}
	assignment.UpdatedBy = localUserID(ctx)

	if err := lc.DB.Save(&assignment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(lc.DB, uint(localUserID(ctx)), "update", "menu_assignment", strconv.Itoa(assignmentID), assignment.AssignType)

	return ctx.JSON(fiber.Map{"message": "Assignment updated successfully", "data": assignment, "success": true})
}

func (lc *MenuLocationController) DeleteAssignment(ctx *fiber.Ctx) error {
	assignmentID, err := ctx.ParamsInt("assignmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var assignment models.MenuAssignment
	if err := lc.DB.First(&assignment, assignmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := lc.DB.Delete(&assignment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(lc.DB, uint(localUserID(ctx)), "delete", "menu_assignment", strconv.Itoa(assignmentID), assignment.AssignType)

	return ctx.JSON(fiber.Map{"message": "Assignment deleted successfully", "success": true})
}
