package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilter narrows transaction queries. Zero values mean "no
// constraint" for the optional fields.
type TransactionFilter struct {
	BusinessID       string
	Type             TransactionType
	CategoryID       string
	MemberID         string
	SettlementStatus SettlementStatus
	StartDate        *time.Time
	EndDate          *time.Time
	Limit            int
	Offset           int
}

// MonthTypeTotal is one grouped row of a monthly aggregation: the summed
// amount for a (month, type) pair.
type MonthTypeTotal struct {
	Month int
	Type  TransactionType
	Total decimal.Decimal
}
