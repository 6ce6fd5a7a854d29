package domain

// Prize groups, in display order
const (
	GroupA = "A"
	GroupB = "B"
)

// Groups lists the known prize groups in their display order.
var Groups = []string{GroupA, GroupB}

// PlaceholderLabel fills a drawing slot before the reveal starts.
const PlaceholderLabel = "虚位以待"
