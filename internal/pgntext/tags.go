package pgntext

// SevenTagRoster contains the seven required PGN tags in order, in the
// canonical casing; internal/headers.EnsureRoster is the one caller that
// needs it, to fill in a placeholder for any tag a source game omitted.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}
