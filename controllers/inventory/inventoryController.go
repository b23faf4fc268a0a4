package inventory

import (
	"warehouse-booking/middleware"
	inventoryService "warehouse-booking/services/inventory"
	inventoryTypes "warehouse-booking/types/inventory"
	"warehouse-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// InventoryController handles the goods declared against a booking
type InventoryController struct {
	Service *inventoryService.Service
}

func NewInventoryController(service *inventoryService.Service) *InventoryController {
	return &InventoryController{Service: service}
}

func (ic *InventoryController) Index(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	items, err := ic.Service.List(actor, c.Params("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Inventory fetched successfully", items)
}

func (ic *InventoryController) Store(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var req inventoryTypes.InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.RespondError(c, err)
	}

	item, err := ic.Service.Add(actor, c.Params("id"), req)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, "Inventory item added successfully", item)
}

func (ic *InventoryController) Update(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var req inventoryTypes.InventoryItemUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.RespondError(c, err)
	}

	item, err := ic.Service.Update(actor, c.Params("inventoryId"), req)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Inventory item updated successfully", item)
}

func (ic *InventoryController) Destroy(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	if err := ic.Service.Delete(actor, c.Params("inventoryId")); err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Inventory item deleted successfully", nil)
}
