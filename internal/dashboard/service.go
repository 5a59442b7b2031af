package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fintrack-app/fintrack-backend/internal/entry"
)

const (
	windowDays    = 30
	recentPerKind = 5
)

// EntryStore is the slice of the record store the engine reads from.
type EntryStore interface {
	ListByOwnerAndKind(ctx context.Context, ownerID string, kind entry.Kind, q entry.Query) ([]entry.Entry, error)
	SumByOwnerAndKind(ctx context.Context, ownerID string, kind entry.Kind) (int64, error)
}

// WindowSummary is a trailing-window subtotal plus the entries behind it.
type WindowSummary struct {
	Total       int64         `json:"total"`
	Transaction []entry.Entry `json:"transaction"`
}

type Summary struct {
	TotalBalance       int64          `json:"totalBalance"`
	TotalIncome        int64          `json:"totalIncome"`
	TotalExpense       int64          `json:"totalExpense"`
	Last30DaysIncome   WindowSummary  `json:"last30DaysIncome"`
	Last30DaysExpense  WindowSummary  `json:"last30DaysExpense"`
	RecentTransactions []entry.Tagged `json:"recentTransactions"`
}

type Service struct {
	store EntryStore
	now   func() time.Time
}

func NewService(store EntryStore) *Service {
	return &Service{store: store, now: time.Now}
}

// BuildSummary assembles the whole dashboard document for one owner. The
// five underlying reads are independent and issued concurrently; the first
// failure cancels the rest and no partial document is returned.
func (s *Service) BuildSummary(ctx context.Context, ownerID string) (Summary, error) {
	var (
		totalIncome   int64
		totalExpense  int64
		windowIncome  []entry.Entry
		windowExpense []entry.Entry
		recent        []entry.Tagged
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalIncome, err = s.totalAmount(gctx, ownerID, entry.KindIncome)
		return err
	})
	g.Go(func() (err error) {
		totalExpense, err = s.totalAmount(gctx, ownerID, entry.KindExpense)
		return err
	})
	g.Go(func() (err error) {
		windowIncome, err = s.inWindow(gctx, ownerID, entry.KindIncome, windowDays)
		return err
	})
	g.Go(func() (err error) {
		windowExpense, err = s.inWindow(gctx, ownerID, entry.KindExpense, windowDays)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.recentFeed(gctx, ownerID, recentPerKind)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalBalance: totalIncome - totalExpense,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Last30DaysIncome: WindowSummary{
			Total:       sumAmounts(windowIncome),
			Transaction: windowIncome,
		},
		Last30DaysExpense: WindowSummary{
			Total:       sumAmounts(windowExpense),
			Transaction: windowExpense,
		},
		RecentTransactions: recent,
	}, nil
}

func (s *Service) totalAmount(ctx context.Context, ownerID string, kind entry.Kind) (int64, error) {
	return s.store.SumByOwnerAndKind(ctx, ownerID, kind)
}

// inWindow selects the owner's entries of one kind dated inside the trailing
// window, most recent first. The lower bound is inclusive and the upper bound
// is open, so future-dated entries are in.
func (s *Service) inWindow(ctx context.Context, ownerID string, kind entry.Kind, days int) ([]entry.Entry, error) {
	from := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	entries, err := s.store.ListByOwnerAndKind(ctx, ownerID, kind, entry.Query{From: from})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return entries, nil
}

// recentFeed fetches the perKind most recent entries of each kind, tags them,
// and merges into one feed sorted by date descending. The per-kind fetches
// are bounded independently, so the feed holds up to 2*perKind items. The
// merge is stable: on equal dates income keeps its place ahead of expense.
func (s *Service) recentFeed(ctx context.Context, ownerID string, perKind int) ([]entry.Tagged, error) {
	var incomes, expenses []entry.Entry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		incomes, err = s.store.ListByOwnerAndKind(gctx, ownerID, entry.KindIncome, entry.Query{Limit: perKind})
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.store.ListByOwnerAndKind(gctx, ownerID, entry.KindExpense, entry.Query{Limit: perKind})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	feed := make([]entry.Tagged, 0, len(incomes)+len(expenses))
	for _, e := range incomes {
		feed = append(feed, entry.Tagged{Entry: e})
	}
	for _, e := range expenses {
		feed = append(feed, entry.Tagged{Entry: e})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})
	return feed, nil
}

func sumAmounts(entries []entry.Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
