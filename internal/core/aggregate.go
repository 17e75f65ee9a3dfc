package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// TypeAmount is an amount summed over all items of one type.
	TypeAmount struct {
		Type   ItemType        `json:"type"`
		Amount decimal.Decimal `json:"amount"`
	}

	// PriorityAmount is an amount summed over all items of one priority.
	PriorityAmount struct {
		Priority Priority        `json:"priority"`
		Amount   decimal.Decimal `json:"amount"`
	}

	// ItemStatus pairs an item with its computed due status.
	ItemStatus struct {
		Item   FinancialItem `json:"item"`
		Status Status        `json:"status"`
	}

	// Overview is the dashboard payload: headline numbers, the two chart
	// groupings and the per-item status list.
	Overview struct {
		TotalDue          decimal.Decimal  `json:"total_due"`
		DueTodayCount     int              `json:"due_today_count"`
		HighPriorityCount int              `json:"high_priority_count"`
		ByType            []TypeAmount     `json:"by_type"`
		ByPriority        []PriorityAmount `json:"by_priority"`
		Statuses          []ItemStatus     `json:"statuses"`
	}
)

// TotalDue sums the amounts of all items. Order-independent; zero for an
// empty collection. Mixing currencies is the caller's problem.
func TotalDue(items []FinancialItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// CountDueOn counts items whose due date equals the given calendar date,
// compared at date granularity.
func CountDueOn(items []FinancialItem, date string) int {
	n := 0
	for _, it := range items {
		if it.DueDate == date {
			n++
		}
	}
	return n
}

// CountByPriority counts items with the given priority.
func CountByPriority(items []FinancialItem, p Priority) int {
	n := 0
	for _, it := range items {
		if it.Priority == p {
			n++
		}
	}
	return n
}

// SumByType partitions items by type and sums each partition. Partitions
// appear in first-seen order and every type occurs at most once.
func SumByType(items []FinancialItem) []TypeAmount {
	index := make(map[ItemType]int)
	out := []TypeAmount{}
	for _, it := range items {
		if i, ok := index[it.Type]; ok {
			out[i].Amount = out[i].Amount.Add(it.Amount)
			continue
		}
		index[it.Type] = len(out)
		out = append(out, TypeAmount{Type: it.Type, Amount: it.Amount})
	}
	return out
}

// SumByPriority is SumByType keyed by priority.
func SumByPriority(items []FinancialItem) []PriorityAmount {
	index := make(map[Priority]int)
	out := []PriorityAmount{}
	for _, it := range items {
		if i, ok := index[it.Priority]; ok {
			out[i].Amount = out[i].Amount.Add(it.Amount)
			continue
		}
		index[it.Priority] = len(out)
		out = append(out, PriorityAmount{Priority: it.Priority, Amount: it.Amount})
	}
	return out
}

// BuildOverview derives the full dashboard from the current items. It
// fails on the first item with an unparseable due date; a partial
// overview would misstate the totals.
func BuildOverview(items []FinancialItem, today time.Time) (Overview, error) {
	ov := Overview{
		TotalDue:          TotalDue(items),
		DueTodayCount:     CountDueOn(items, atMidnight(today).Format(DateLayout)),
		HighPriorityCount: CountByPriority(items, PriorityHigh),
		ByType:            SumByType(items),
		ByPriority:        SumByPriority(items),
		Statuses:          make([]ItemStatus, 0, len(items)),
	}

	for _, it := range items {
		st, err := ClassifyStatus(it, today)
		if err != nil {
			return Overview{}, err
		}
		ov.Statuses = append(ov.Statuses, ItemStatus{Item: it, Status: st})
	}

	return ov, nil
}
