package catalog

// Responsive layout constants. These are part of the observable contract:
// a given viewport width must always yield the same page size.
const (
	// MobileBreakpoint is the viewport width (in layout units) at or below
	// which the narrow page size applies.
	MobileBreakpoint = 1024

	// CardWidth is the nominal width of one show card in layout units.
	CardWidth = 260

	// RowsPerPage is the number of card rows shown per page on wide viewports.
	RowsPerPage = 2

	// MobilePageSize is the fixed page size for narrow viewports.
	MobilePageSize = 10
)

// PageSizeFor computes the page size for a viewport width: narrow viewports
// get a fixed page of 10, wide viewports fit two rows of cards.
func PageSizeFor(width int) int {
	if width <= MobileBreakpoint {
		return MobilePageSize
	}
	return (width / CardWidth) * RowsPerPage
}
