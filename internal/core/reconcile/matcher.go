package reconcile

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Transaction is the matcher's view of a bank transaction.
type Transaction struct {
	ID               uuid.UUID
	DescripcionBanco string
	Matched          bool
}

// Order is the matcher's view of a purchase order.
type Order struct {
	ID    uuid.UUID
	Folio string
}

// Match pairs a transaction with the order whose folio appears in its bank
// description.
type Match struct {
	TransactionID uuid.UUID
	OrderID       uuid.UUID
	Folio         string
}

// Confidence levels recorded on a matched transaction.
const (
	ConfidenceAuto   = 100
	ConfidenceManual = 0
)

// FindAutoMatches scans every unmatched transaction for an order folio
// contained (case-insensitive) in its bank description. When several folios
// are substrings of the same description the longest folio wins; equal
// lengths fall back to lexicographic order so reruns are deterministic.
// Transactions without any candidate simply produce no pair.
func FindAutoMatches(transactions []Transaction, orders []Order) []Match {
	candidates := make([]Order, 0, len(orders))
	for _, o := range orders {
		if strings.TrimSpace(o.Folio) == "" {
			continue
		}
		candidates = append(candidates, o)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].Folio) != len(candidates[j].Folio) {
			return len(candidates[i].Folio) > len(candidates[j].Folio)
		}
		return candidates[i].Folio < candidates[j].Folio
	})

	var matches []Match
	for _, tx := range transactions {
		if tx.Matched {
			continue
		}
		descripcion := strings.ToLower(tx.DescripcionBanco)
		for _, o := range candidates {
			if strings.Contains(descripcion, strings.ToLower(o.Folio)) {
				matches = append(matches, Match{
					TransactionID: tx.ID,
					OrderID:       o.ID,
					Folio:         o.Folio,
				})
				break
			}
		}
	}
	return matches
}
