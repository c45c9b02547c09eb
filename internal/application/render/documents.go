package render

import (
	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// QuotationDocument is everything the quotation planner consumes.
type QuotationDocument struct {
	Quotation entity.Quotation
	Items     []entity.QuotationItem
	Company   entity.Company
	Client    entity.Client
}

// BillDocument is everything the bill planner consumes. Items come from the
// underlying quotation.
type BillDocument struct {
	Bill      entity.Bill
	Quotation entity.Quotation
	Items     []entity.QuotationItem
	Company   entity.Company
	Client    entity.Client
}

// ReceiptDocument is everything the receipt planner consumes. TotalPaid is
// the sum over all receipts of the quotation, for the balance lines.
type ReceiptDocument struct {
	Receipt   entity.Receipt
	Quotation entity.Quotation
	Company   entity.Company
	Client    entity.Client
	TotalPaid decimal.Decimal
}

// defaultRoomLabel groups items that carry no room label.
const defaultRoomLabel = "General"

// roomGroup is one rendered table section.
type roomGroup struct {
	Label string
	Items []entity.QuotationItem
}

// groupByRoom partitions items into room groups ordered by the first
// occurrence of each label, preserving item order within a group.
func groupByRoom(items []entity.QuotationItem) []roomGroup {
	index := make(map[string]int)
	var groups []roomGroup
	for _, item := range items {
		label := item.RoomLabel
		if label == "" {
			label = defaultRoomLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, roomGroup{Label: label})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
