package report

import "github.com/shopspring/decimal"

type totals struct {
	intake    decimal.Decimal
	dispensed decimal.Decimal
}

// accumulator sums intake/dispensed per key and remembers first-seen key order, so the
// output order never depends on map iteration. Keys compare by exact string equality.
type accumulator struct {
	index map[string]int
	keys  []string
	sums  []totals
}

func newAccumulator(capacity int) *accumulator {
	return &accumulator{
		index: make(map[string]int, capacity),
		keys:  make([]string, 0, capacity),
		sums:  make([]totals, 0, capacity),
	}
}

func (a *accumulator) add(key string, intake, dispensed decimal.Decimal) {
	i, ok := a.index[key]
	if !ok {
		i = len(a.keys)
		a.index[key] = i
		a.keys = append(a.keys, key)
		a.sums = append(a.sums, totals{intake: decimal.Zero, dispensed: decimal.Zero})
	}
	a.sums[i].intake = a.sums[i].intake.Add(intake)
	a.sums[i].dispensed = a.sums[i].dispensed.Add(dispensed)
}

func (a *accumulator) len() int {
	return len(a.keys)
}

func (a *accumulator) each(fn func(key string, t totals)) {
	for i, key := range a.keys {
		fn(key, a.sums[i])
	}
}
