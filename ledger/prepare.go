package ledger

import (
	"fmt"
	"strings"
)

// TypeGroup 某一类目的笔数与合计，顺序按首次出现排列。
type TypeGroup struct {
	Type  string
	Count int
	Total float64
}

// RemarkEntry 一条待誊入备注附录的条目。
type RemarkEntry struct {
	Name     string
	Position string // 该记录在正簿中的位次，例如 "第 2 页 第 5 位"
	Remark   string
}

// Prepared 是整理后的只读记账数据，布局阶段据此排版。
type Prepared struct {
	Records      []Record
	ItemsPerPage int
	// Pages 按每页格数切分的记录（正簿网格页，逐页一片）。
	Pages [][]Record
	// GrandTotal 全部未作废记录的合计。
	GrandTotal float64
	// Groups 类目分组，首见序。
	Groups []TypeGroup
	// Remarks 备注条目，含作废记录（作废仍占格位）。
	Remarks []RemarkEntry
}

// PageCount 正簿网格页数。
func (p *Prepared) PageCount() int { return len(p.Pages) }

// Prepare 整理原始记录：合计、类目分组、备注定位与分页。
// 空记录列表是致命错误，不进入排版。
func Prepare(records []Record, itemsPerPage int) (*Prepared, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("ledger: 没有可入簿的礼金记录")
	}
	if itemsPerPage <= 0 {
		return nil, fmt.Errorf("ledger: 每页格数必须为正，传入 %d", itemsPerPage)
	}

	p := &Prepared{
		Records:      records,
		ItemsPerPage: itemsPerPage,
	}

	groupIdx := map[string]int{}
	for i, r := range records {
		if !r.Abolished {
			p.GrandTotal += r.Amount
			gi, ok := groupIdx[r.Type]
			if !ok {
				gi = len(p.Groups)
				groupIdx[r.Type] = gi
				p.Groups = append(p.Groups, TypeGroup{Type: r.Type})
			}
			p.Groups[gi].Count++
			p.Groups[gi].Total += r.Amount
		}
		if strings.TrimSpace(r.Remark) != "" {
			p.Remarks = append(p.Remarks, RemarkEntry{
				Name:     r.Name,
				Position: position(i, itemsPerPage),
				Remark:   r.Remark,
			})
		}
	}

	for start := 0; start < len(records); start += itemsPerPage {
		end := start + itemsPerPage
		if end > len(records) {
			end = len(records)
		}
		p.Pages = append(p.Pages, records[start:end])
	}
	return p, nil
}

// position 由原始下标推算正簿位次。作废与否不影响位次。
func position(index, itemsPerPage int) string {
	page := index/itemsPerPage + 1
	slot := index%itemsPerPage + 1
	return fmt.Sprintf("第 %d 页 第 %d 位", page, slot)
}

// PageSubtotal 返回某一页切片中未作废记录的合计。
func PageSubtotal(page []Record) float64 {
	var sum float64
	for _, r := range page {
		if !r.Abolished {
			sum += r.Amount
		}
	}
	return sum
}
