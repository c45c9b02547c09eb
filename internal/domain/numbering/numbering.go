// Package numbering issues the human-readable document numbers printed on
// quotations, bills and receipts: <PREFIX>/<SCOPE>/<YYMM>/<SEQ>, with SEQ
// zero-padded to four digits and counted per (document type, company code,
// year-month). Sequences restart every month; the year-month always comes
// from the clock at allocation time, never from a backdated business date.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DocType selects the number format of a document family.
type DocType string

const (
	DocQuotation DocType = "quotation" // AARTI/2501/0001
	DocBill      DocType = "bill"      // INV/AARTI/2501/0001
	DocReceipt   DocType = "receipt"   // RCP/AARTI/2501/0001
)

// typePrefix returns the literal prefix segment of a document family, empty
// for quotations which start directly with the scope code.
func typePrefix(t DocType) string {
	switch t {
	case DocBill:
		return "INV"
	case DocReceipt:
		return "RCP"
	default:
		return ""
	}
}

// ScopePrefix builds the literal prefix string shared by every number in the
// scope, e.g. "INV/AARTI/2501". The store matches last-issued numbers against
// this prefix.
func ScopePrefix(t DocType, scopeCode string, now time.Time) string {
	yymm := fmt.Sprintf("%02d%02d", now.Year()%100, int(now.Month()))
	if p := typePrefix(t); p != "" {
		return p + "/" + scopeCode + "/" + yymm
	}
	return scopeCode + "/" + yymm
}

// Next computes the number following last within the scope of (t, scopeCode,
// now). last is the most recently issued number in that scope, or empty when
// the scope has none yet. The sequence is taken from the segment after the
// final slash; an unparseable tail restarts the scope at 1.
func Next(t DocType, scopeCode, last string, now time.Time) string {
	seq := 1
	if last != "" {
		parts := strings.Split(last, "/")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s/%04d", ScopePrefix(t, scopeCode, now), seq)
}
