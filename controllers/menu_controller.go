package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"fiber-bizapp/models"
	"fiber-bizapp/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{DB: DB}
}

func (mc *MenuController) companyScope(ctx *fiber.Ctx) *uint {
	if companyID, ok := ctx.Locals("companyID").(float64); ok {
		id := uint(companyID)
		return &id
	}
	return nil
}

func (mc *MenuController) GetAllMenus(ctx *fiber.Ctx) error {
	query := mc.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Where("parent_id IS NULL").Order("sort_order asc")
	})
	if companyID := mc.companyScope(ctx); companyID != nil {
		query = query.Where("company_id = ? OR company_id IS NULL", *companyID)
	}

	var menus []models.Menu
	if err := query.Find(&menus).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": menus, "success": true})
}

func (mc *MenuController) GetMenuByID(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	menu, err := mc.loadMenuTree(menuID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": menu, "success": true})
}

func (mc *MenuController) CreateMenu(ctx *fiber.Ctx) error {
	var input struct {
		Name   string `json:"name" validate:"required,min=2"`
		Slug   string `json:"slug" validate:"required,min=2"`
		Locale string `json:"locale"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Locale == "" {
		input.Locale = "en"
	}

	menu := models.Menu{
		Name:      input.Name,
		Slug:      input.Slug,
		Locale:    input.Locale,
		CompanyID: mc.companyScope(ctx),
		IsActive:  true,
		CreatedBy: localUserID(ctx),
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(mc.DB, uint(localUserID(ctx)), "create", "menu", strconv.Itoa(int(menu.ID)), menu.Slug)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Menu created successfully", "data": menu, "success": true})
}

func (mc *MenuController) UpdateMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, menuID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name     string `json:"name"`
		Locale   string `json:"locale"`
		IsActive *bool  `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.Name != "" {
		menu.Name = input.Name
	}
	if input.Locale != "" {
		menu.Locale = input.Locale
	}
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}
	menu.UpdatedBy = localUserID(ctx)

	if err := mc.DB.Save(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(mc.DB, uint(localUserID(ctx)), "update", "menu", strconv.Itoa(menuID), menu.Slug)

	return ctx.JSON(fiber.Map{"message": "Menu updated successfully", "data": menu, "success": true})
}

func (mc *MenuController) DeleteMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, menuID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := mc.DB.Delete(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(mc.DB, uint(localUserID(ctx)), "delete", "menu", strconv.Itoa(menuID), menu.Slug)

	return ctx.JSON(fiber.Map{"message": "Menu deleted successfully", "success": true})
}

func (mc *MenuController) CreateMenuItem(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Label             string            `json:"label" validate:"required"`
		LabelTranslations map[string]string `json:"label_translations"`
		Href              string            `json:"href" validate:"required"`
		Icon              string            `json:"icon"`
		SortOrder         int               `json:"sort_order"`
		IsVisible         *bool             `json:"is_visible"`
		RequiredRole      string            `json:"required_role"`
		ModuleSlug        string            `json:"module_slug"`
		ParentID          *uint             `json:"parent_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, menuID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
	}

	if input.ParentID != nil {
		var parent models.MenuItem
		if err := mc.DB.Where("id = ? AND menu_id = ?", *input.ParentID, menu.ID).First(&parent).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parent item not found in this menu"})
		}
	}

	visible := true
	if input.IsVisible != nil {
		visible = *input.IsVisible
	}

	item := models.MenuItem{
		MenuID:            menu.ID,
		ParentID:          input.ParentID,
		Label:             input.Label,
		LabelTranslations: input.LabelTranslations,
		Href:              input.Href,
		Icon:              input.Icon,
		SortOrder:         input.SortOrder,
		IsVisible:         visible,
		RequiredRole:      input.RequiredRole,
		ModuleSlug:        input.ModuleSlug,
		CreatedBy:         localUserID(ctx),
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Menu item created successfully", "data": item, "success": true})
}

func (mc *MenuController) UpdateMenuItem(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Label             *string           `json:"label"`
		LabelTranslations map[string]string `json:"label_translations"`
		Href              *string           `json:"href"`
		Icon              *string           `json:"icon"`
		SortOrder         *int              `json:"sort_order"`
		IsVisible         *bool             `json:"is_visible"`
		RequiredRole      *string           `json:"required_role"`
		ModuleSlug        *string           `json:"module_slug"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.Label != nil {
		item.Label = *input.Label
	}
	if input.LabelTranslations != nil {
		item.LabelTranslations = input.LabelTranslations
	}
	if input.Href != nil {
		item.Href = *input.Href
	}
	if input.Icon != nil {
		item.Icon = *input.Icon
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
	if input.IsVisible != nil {
		item.IsVisible = *input.IsVisible
	}
	if input.RequiredRole != nil {
		item.RequiredRole = *input.RequiredRole
	}
	if input.ModuleSlug != nil {
		item.ModuleSlug = *input.ModuleSlug
	}
	item.UpdatedBy = localUserID(ctx)

	if err := mc.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Menu item updated successfully", "data": item, "success": true})
}

func (mc *MenuController) DeleteMenuItem(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Children go with the parent.
	if err := mc.DB.Where("parent_id = ?", item.ID).Delete(&models.MenuItem{}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := mc.DB.Delete(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Menu item deleted successfully", "success": true})
}

// ExportMenu streams the menu tree as an xlsx workbook, one row per item with
// depth shown by label indentation.
func (mc *MenuController) ExportMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	menu, err := mc.loadMenuTree(menuID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Label", "Href", "Icon", "Required Role", "Module", "Order", "Visible"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	var writeItems func(items []models.MenuItem, depth int)
	writeItems = func(items []models.MenuItem, depth int) {
		for _, item := range items {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), strings.Repeat("  ", depth)+item.Label)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Href)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Icon)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.RequiredRole)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.ModuleSlug)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.SortOrder)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), item.IsVisible)
			row++
			writeItems(item.Children, depth+1)
		}
	}
	writeItems(menu.Items, 0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export file"})
	}

	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="menu-%s.xlsx"`, menu.Slug))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Send(buf.Bytes())
}

func (mc *MenuController) loadMenuTree(menuID int) (*models.Menu, error) {
	ordered := func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }
	roots := func(db *gorm.DB) *gorm.DB {
		return db.Where("parent_id IS NULL").Order("sort_order asc")
	}

	var menu models.Menu
	err := mc.DB.
		Preload("Items", roots).
		Preload("Items.Children", ordered).
		Preload("Items.Children.Children", ordered).
		First(&menu, menuID).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func localUserID(ctx *fiber.Ctx) int {
	if userID, ok := ctx.Locals("userID").(float64); ok {
		return int(userID)
	}
	return 0
}
