package expense

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fintrack-app/fintrack-backend/internal/entry"
	"github.com/fintrack-app/fintrack-backend/internal/export"
	"github.com/fintrack-app/fintrack-backend/internal/money"
)

type Handler struct {
	Store *entry.Store
}

func NewHandler(store *entry.Store) *Handler {
	return &Handler{Store: store}
}

type createRequest struct {
	Icon     string   `json:"icon"`
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
	Date     string   `json:"date"`
}

func (h *Handler) Add(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" || req.Amount == nil || strings.TrimSpace(req.Date) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "all fields are required")
	}

	amount, err := money.ToMinorUnits(*req.Amount)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be a non-negative number")
	}

	date, err := entry.ParseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	e := entry.Entry{
		UserID: userID,
		Kind:   entry.KindExpense,
		Icon:   strings.TrimSpace(req.Icon),
		Label:  req.Category,
		Amount: amount,
		Date:   date,
	}

	stored, err := h.Store.Insert(userContext(c), &e)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add expense: "+err.Error())
	}

	return c.JSON(stored)
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := h.Store.ListByOwnerAndKind(userContext(c), userID, entry.KindExpense, entry.Query{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch expenses")
	}
	if entries == nil {
		entries = []entry.Entry{}
	}

	return c.JSON(entries)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	err = h.Store.DeleteByID(userContext(c), userID, id, entry.KindExpense)
	if errors.Is(err, entry.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "expense not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete expense")
	}

	return c.JSON(fiber.Map{"message": "expense deleted"})
}

func (h *Handler) DownloadExcel(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := h.Store.ListByOwnerAndKind(userContext(c), userID, entry.KindExpense, entry.Query{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch expenses")
	}

	buf, err := export.EntriesXLSX(entry.KindExpense, entries)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build excel file")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expense_details.xlsx"`)
	return c.Send(buf)
}

func extractUserID(c *fiber.Ctx) (string, error) {
	val := c.Locals("user_id")
	if val == nil {
		val = c.Locals("userID")
	}
	if val == nil {
		return "", errors.New("user id missing")
	}
	if uid, ok := val.(string); ok && strings.TrimSpace(uid) != "" {
		return uid, nil
	}
	return "", errors.New("user id missing")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
