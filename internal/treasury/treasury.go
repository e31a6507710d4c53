// Package treasury provides the cycle-scoped budget value and the
// allocation report returned by the advisor.
package treasury

import (
	"github.com/google/uuid"
)

// Budget is the remaining spendable currency within one allocation cycle.
// It never goes negative: Spend refuses overdrafts.
type Budget int64

// CanAfford reports whether the budget covers the given cost.
func (b Budget) CanAfford(cost int64) bool {
	return cost >= 0 && int64(b) >= cost
}

// Spend deducts cost from the budget. Returns false, leaving the budget
// unchanged, if the cost is unaffordable or negative.
func (b *Budget) Spend(cost int64) bool {
	if !b.CanAfford(cost) {
		return false
	}
	*b -= Budget(cost)
	return true
}

// Exhausted reports whether no crowns remain.
func (b Budget) Exhausted() bool {
	return b <= 0
}

// Transaction records one executed purchase.
type Transaction struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Target   string    `json:"target"`
	Cost     int64     `json:"cost"`
}

// AllocationReport is the result of one advisor run for one polity.
type AllocationReport struct {
	PolityID     uint64        `json:"polity_id"`
	Cycle        uint64        `json:"cycle"`
	Initial      int64         `json:"initial"`
	Remaining    int64         `json:"remaining"`
	Transactions []Transaction `json:"transactions"`
}

// NewReport starts an empty report for a polity with the given opening treasury.
func NewReport(polityID uint64, cycle uint64, initial int64) *AllocationReport {
	return &AllocationReport{
		PolityID: polityID,
		Cycle:    cycle,
		Initial:  initial,
	}
}

// Record appends an executed transaction.
func (r *AllocationReport) Record(category, target string, cost int64) Transaction {
	tx := Transaction{
		ID:       uuid.New(),
		Category: category,
		Target:   target,
		Cost:     cost,
	}
	r.Transactions = append(r.Transactions, tx)
	return tx
}

// Spent sums the cost of all executed transactions.
func (r *AllocationReport) Spent() int64 {
	var total int64
	for _, tx := range r.Transactions {
		total += tx.Cost
	}
	return total
}
