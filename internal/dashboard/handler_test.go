package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-app/fintrack-backend/internal/entry"
)

func newTestApp(store EntryStore, authed bool) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(store))

	app.Get("/api/v1/dashboard", func(c *fiber.Ctx) error {
		if authed {
			c.Locals("user_id", "owner-1")
		}
		return c.Next()
	}, h.Get)

	return app
}

func TestHandlerGetDashboard(t *testing.T) {
	now := time.Now()
	store := &fakeStore{entries: []entry.Entry{
		testEntry("i1", "owner-1", entry.KindIncome, 100, now),
		testEntry("e1", "owner-1", entry.KindExpense, 30, now),
	}}
	app := newTestApp(store, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/dashboard", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &doc))
	for _, key := range []string{
		"totalBalance",
		"totalIncome",
		"totalExpense",
		"last30DaysIncome",
		"last30DaysExpense",
		"recentTransactions",
	} {
		assert.Contains(t, doc, key)
	}

	var feed []map[string]any
	require.NoError(t, json.Unmarshal(doc["recentTransactions"], &feed))
	require.Len(t, feed, 2)
	assert.Equal(t, "income", feed[0]["type"])
	assert.Equal(t, "expense", feed[1]["type"])
}

func TestHandlerUnauthorized(t *testing.T) {
	app := newTestApp(&fakeStore{}, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/dashboard", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHandlerStoreFailure(t *testing.T) {
	app := newTestApp(&fakeStore{err: errors.New("store down")}, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/dashboard", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
