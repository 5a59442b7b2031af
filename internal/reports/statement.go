package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Pool *pgxpool.Pool
}

func NewHandler(pool *pgxpool.Pool) *Handler {
	return &Handler{Pool: pool}
}

type StatementItem struct {
	Type   string `json:"type"` // income/expense
	ID     string `json:"id"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
	Amount int64  `json:"amount"`
	Date   string `json:"date"` // YYYY-MM-DD
}

type StatementResponse struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	TotalIncome  int64           `json:"total_income"`
	TotalExpense int64           `json:"total_expense"`
	Balance      int64           `json:"balance"`
	Items        []StatementItem `json:"items"`
}

func (h *Handler) Statement(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := periodBounds(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.buildStatement(userContext(c), userID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build statement: "+err.Error())
	}

	return c.JSON(resp)
}

// periodBounds reads from/to query params, defaulting to the trailing 30 days.
func periodBounds(c *fiber.Ctx) (string, string, error) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		end := time.Now()
		start := end.AddDate(0, 0, -29)
		from = start.Format("2006-01-02")
		to = end.Format("2006-01-02")
	}

	if _, err := time.Parse("2006-01-02", from); err != nil {
		return "", "", errors.New("from must be YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return "", "", errors.New("to must be YYYY-MM-DD")
	}
	return from, to, nil
}

func (h *Handler) buildStatement(ctx context.Context, userID, from, to string) (StatementResponse, error) {
	rows, err := h.Pool.Query(ctx, `
SELECT type, id, title, icon, amount, date
FROM (
  SELECT 'income' AS type,
         id::text AS id,
         source AS title,
         icon,
         amount::bigint AS amount,
         date
  FROM incomes
  WHERE user_id = $1 AND date >= $2::date AND date < $3::date + INTERVAL '1 day'

  UNION ALL

  SELECT 'expense' AS type,
         id::text AS id,
         category AS title,
         icon,
         amount::bigint AS amount,
         date
  FROM expenses
  WHERE user_id = $1 AND date >= $2::date AND date < $3::date + INTERVAL '1 day'
) t
ORDER BY date DESC, id DESC
LIMIT 2000
`, userID, from, to)
	if err != nil {
		return StatementResponse{}, err
	}
	defer rows.Close()

	items := make([]StatementItem, 0)
	for rows.Next() {
		var it StatementItem
		var date time.Time
		if err := rows.Scan(&it.Type, &it.ID, &it.Title, &it.Icon, &it.Amount, &date); err != nil {
			return StatementResponse{}, err
		}
		it.Date = date.Format("2006-01-02")
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return StatementResponse{}, err
	}

	var totalIncome int64
	if err := h.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)::bigint
		FROM incomes
		WHERE user_id = $1 AND date >= $2::date AND date < $3::date + INTERVAL '1 day'
	`, userID, from, to).Scan(&totalIncome); err != nil {
		return StatementResponse{}, err
	}

	var totalExpense int64
	if err := h.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)::bigint
		FROM expenses
		WHERE user_id = $1 AND date >= $2::date AND date < $3::date + INTERVAL '1 day'
	`, userID, from, to).Scan(&totalExpense); err != nil {
		return StatementResponse{}, err
	}

	return StatementResponse{
		From:         from,
		To:           to,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome - totalExpense,
		Items:        items,
	}, nil
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
