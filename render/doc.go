// Package render turns solved instances into terminal text: the E/W/Root
// diagnostic tables, the entered-data table, and two tree views.
//
// Table cells outside the meaningful triangle (i > j+1, or an empty
// range in the Root table) always show "-" rather than a storage zero.
// Exact column widths and borders come from go-pretty's light style and
// are not part of any contract; callers should treat the output as
// opaque text for humans.
package render
