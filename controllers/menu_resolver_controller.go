package controllers

import (
	"errors"
	"strconv"

	"fiber-bizapp/repositories"
	"fiber-bizapp/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuResolverController struct {
	DB *gorm.DB
}

func NewMenuResolverController(DB *gorm.DB) *MenuResolverController {
	return &MenuResolverController{DB: DB}
}

// ResolveMenu handles GET /menu-resolver/:location. The response is never
// cacheable: menu changes must be visible on the next request.
func (c *MenuResolverController) ResolveMenu(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: Invalid user ID",
		})
	}
	roleName, _ := ctx.Locals("roleName").(string)

	rc := services.RequesterContext{
		UserID:   uint(userID),
		RoleName: roleName,
	}

	if companyID, ok := ctx.Locals("companyID").(float64); ok {
		id := uint(companyID)
		rc.CompanyID = &id
	}
	if branchID, ok := ctx.Locals("branchID").(string); ok {
		rc.BranchID = branchID
	}

	// Explicit query parameters take precedence over session values.
	if q := ctx.Query("userId"); q != "" {
		if id, err := strconv.ParseUint(q, 10, 32); err == nil {
			rc.UserID = uint(id)
		}
	}
	if q := ctx.Query("roleId"); q != "" {
		if id, err := strconv.ParseUint(q, 10, 32); err == nil {
			rc.RoleID = uint(id)
		}
	}
	if q := ctx.Query("branchId"); q != "" {
		rc.BranchID = q
	}

	repo := repositories.NewMenuRepository(c.DB)
	resolver := services.NewMenuResolverService(repo, repo)

	setNoCache(ctx)

	resolved, err := resolver.Resolve(ctx.Params("location"), rc)
	if err != nil {
		if errors.Is(err, services.ErrCompanyRequired) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		if errors.Is(err, services.ErrLocationNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if resolved == nil {
		return ctx.JSON(fiber.Map{
			"success": true,
			"data":    nil,
			"message": "No menu assigned for this location",
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    resolved,
	})
}

func setNoCache(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	ctx.Set("Pragma", "no-cache")
	ctx.Set("Expires", "0")
}
