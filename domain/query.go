package domain

// Period restricts the idea list to a creation window.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Periods lists the filter choices in display order.
var Periods = []Period{PeriodAll, PeriodWeek, PeriodMonth}

// Label returns the human readable filter name.
func (p Period) Label() string {
	switch p {
	case PeriodWeek:
		return "This week"
	case PeriodMonth:
		return "This month"
	default:
		return "All time"
	}
}

// Next cycles all → week → month → all.
func (p Period) Next() Period {
	for i, v := range Periods {
		if v == p {
			return Periods[(i+1)%len(Periods)]
		}
	}
	return PeriodAll
}

// SortKey selects the server-side ordering of the idea list.
type SortKey string

const (
	SortVotes    SortKey = "votes"
	SortComments SortKey = "comments"
)

// SortKeys lists the sort choices in display order.
var SortKeys = []SortKey{SortVotes, SortComments}

// Toggle flips between votes and comments.
func (s SortKey) Toggle() SortKey {
	if s == SortComments {
		return SortVotes
	}
	return SortComments
}

// ListQuery is the filter/sort pair sent with every list read.
type ListQuery struct {
	Period Period
	Sort   SortKey
}

// DefaultListQuery is the selection a fresh board starts with.
func DefaultListQuery() ListQuery {
	return ListQuery{Period: PeriodAll, Sort: SortVotes}
}
