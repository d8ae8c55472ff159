package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"vehicle_rental/internal/metrics"
	"vehicle_rental/internal/store"
)

const dateLayout = "2006-01-02"

// payment_date arrives from a date picker as YYYY-MM-DD; older records may
// carry a full timestamp.
var paymentDateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type DailyTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type VehicleSupplierCount struct {
	VehicleName string `json:"vehicle_name"`
	Suppliers   int    `json:"suppliers"`
}

type Reports struct {
	stg store.IStore
}

func NewReports(stg store.IStore) *Reports {
	return &Reports{stg: stg}
}

func parsePaymentDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PaymentsByDay sums payment amounts per calendar day, ascending. Payments
// with an unparseable date are left out and named in a *ParseError that
// accompanies the partial series.
func (r *Reports) PaymentsByDay(ctx context.Context) (series []DailyTotal, err error) {
	defer func() { metrics.RecordOperation("report", "payments_by_day", Outcome(err)) }()

	payments, err := r.stg.Payments().Find(ctx, nil)
	if err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{}
	var skipped []string
	for _, p := range payments {
		t, ok := parsePaymentDate(p.PaymentDate)
		if !ok {
			skipped = append(skipped, p.PaymentID)
			continue
		}
		day := t.Format(dateLayout)
		totals[day] = totals[day].Add(p.Amount)
	}

	series = make([]DailyTotal, 0, len(totals))
	for day, total := range totals {
		series = append(series, DailyTotal{Date: day, Total: total})
	}
	// YYYY-MM-DD sorts chronologically as a string.
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	if len(skipped) > 0 {
		return series, &ParseError{PaymentIDs: skipped}
	}
	return series, nil
}

// SupplierCountsByVehicleName counts suppliers per name of the vehicle they
// provide. Suppliers whose vehicle is missing are not counted.
func (r *Reports) SupplierCountsByVehicleName(ctx context.Context) (counts map[string]int, err error) {
	defer func() { metrics.RecordOperation("report", "supplier_distribution", Outcome(err)) }()

	suppliers, err := r.stg.Suppliers().Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	vehicles, err := r.stg.Vehicles().Find(ctx, nil)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		if _, seen := names[v.VehicleID]; !seen {
			names[v.VehicleID] = v.VehicleName
		}
	}

	counts = map[string]int{}
	for _, s := range suppliers {
		name, ok := names[s.VehicleID]
		if !ok {
			continue
		}
		counts[name]++
	}
	return counts, nil
}

// SortSupplierCounts orders counts for display: most suppliers first, then
// by vehicle name.
func SortSupplierCounts(counts map[string]int) []VehicleSupplierCount {
	out := make([]VehicleSupplierCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, VehicleSupplierCount{VehicleName: name, Suppliers: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Suppliers != out[j].Suppliers {
			return out[i].Suppliers > out[j].Suppliers
		}
		return out[i].VehicleName < out[j].VehicleName
	})
	return out
}

// SeriesTotal sums every day of series.
func SeriesTotal(series []DailyTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range series {
		sum = sum.Add(d.Total)
	}
	return sum
}
