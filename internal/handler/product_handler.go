package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SushanthKalagi/EcommerceApplication/internal/model"
	"github.com/SushanthKalagi/EcommerceApplication/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// errorResponse matches the API's error body: status, message, timestamp.
type errorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Create(&req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Update(id, &req)
	if err != nil {
		return h.fail(c, err)
	}
	if product == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{
				Status:    fiber.StatusNotFound,
				Message:   fmt.Sprintf("Product not found with id : '%d'", id),
				Timestamp: time.Now(),
			})
		}
		return h.fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return h.fail(c, err)
	}
	if product == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.JSON(product)
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	args := c.Context().QueryArgs()

	params := service.SearchParams{}
	if args.Has("name") {
		v := c.Query("name")
		params.Name = &v
	}
	if args.Has("category") {
		v := c.Query("category")
		params.Category = &v
	}
	if args.Has("minPrice") {
		v, err := strconv.ParseFloat(c.Query("minPrice"), 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid minPrice"})
		}
		params.MinPrice = &v
	}
	if args.Has("maxPrice") {
		v, err := strconv.ParseFloat(c.Query("maxPrice"), 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maxPrice"})
		}
		params.MaxPrice = &v
	}
	params.Paging = parsePaging(c)

	page, err := h.service.Search(params)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(page)
}

func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(categories)
}

// parsePaging reads page (default 0), size (default 10) and a
// "field,asc|desc" sort parameter defaulting to product name ascending.
func parsePaging(c *fiber.Ctx) model.PageRequest {
	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}
	size := c.QueryInt("size", 10)
	if size < 1 {
		size = 10
	}

	field, dir, _ := strings.Cut(c.Query("sort", "productName,asc"), ",")

	return model.PageRequest{
		Page: page,
		Size: size,
		Sort: field,
		Desc: strings.EqualFold(dir, "desc"),
	}
}

func (h *ProductHandler) fail(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(verr.Fields)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
		Status:    fiber.StatusInternalServerError,
		Message:   "An unexpected error occurred",
		Timestamp: time.Now(),
	})
}
