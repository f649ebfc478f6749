package controllers

import (
	"fiber-bizapp/controllers/idgen"
	"fiber-bizapp/models"
	"fiber-bizapp/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(DB *gorm.DB) *CompanyController {
	return &CompanyController{DB: DB}
}

func (c *CompanyController) GetAllCompanies(ctx *fiber.Ctx) error {
	var companies []models.Company
	if err := c.DB.Preload("Branches").Find(&companies).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": companies, "success": true})
}

func (c *CompanyController) CreateCompany(ctx *fiber.Ctx) error {
	var input struct {
		Code string `json:"code" validate:"required,min=2"`
		Name string `json:"name" validate:"required,min=2"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	company := models.Company{
		Code:      input.Code,
		Name:      input.Name,
		IsActive:  true,
		CreatedBy: localUserID(ctx),
	}

	if err := c.DB.Create(&company).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Company created successfully", "data": company, "success": true})
}

func (c *CompanyController) UpdateCompany(ctx *fiber.Ctx) error {
	companyID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var company models.Company
	if err := c.DB.First(&company, companyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.Name != "" {
		company.Name = input.Name
	}
	if input.IsActive != nil {
		company.IsActive = *input.IsActive
	}
	company.UpdatedBy = localUserID(ctx)

	if err := c.DB.Save(&company).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Company updated successfully", "data": company, "success": true})
}

func (c *CompanyController) CreateBranch(ctx *fiber.Ctx) error {
	companyID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var company models.Company
	if err := c.DB.First(&company, companyID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	var input struct {
		Code    string `json:"code" validate:"required,min=2"`
		Name    string `json:"name" validate:"required,min=2"`
		Address string `json:"address"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	branch := models.Branch{
		ID:        types.SnowflakeID(idgen.GenerateID()),
		CompanyID: company.ID,
		Code:      input.Code,
		Name:      input.Name,
		Address:   input.Address,
		IsActive:  true,
		CreatedBy: localUserID(ctx),
	}

	if err := c.DB.Create(&branch).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Branch created successfully", "data": branch, "success": true})
}

func (c *CompanyController) GetBranches(ctx *fiber.Ctx) error {
	companyID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var branches []models.Branch
	if err := c.DB.Where("company_id = ?", companyID).Find(&branches).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": branches, "success": true})
}
