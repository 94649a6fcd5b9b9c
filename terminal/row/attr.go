package row

import (
	"github.com/hnimtadd/termbuf/logger"
	"github.com/hnimtadd/termbuf/terminal/attribute"
	"github.com/hnimtadd/termbuf/terminal/hyperlink"
	"github.com/hnimtadd/termbuf/terminal/rle"
	"github.com/hnimtadd/termbuf/terminal/size"
	"github.com/hnimtadd/termbuf/terminal/utils"
)

// Attributes returns the row's attribute run list.
func (r *Row) Attributes() *rle.List[attribute.Attribute] {
	return r.attr
}

// TransferAttributes adopts a copy of another row's attribute runs and
// re-extends or truncates it to the given width.
func (r *Row) TransferAttributes(attr *rle.List[attribute.Attribute], newWidth size.CellCountInt) {
	r.attr = attr.Clone()
	r.attr.ResizeTrailingExtent(newWidth)
}

// GetAttrByColumn returns the attribute at a column. The column must be
// in range.
func (r *Row) GetAttrByColumn(col size.CellCountInt) attribute.Attribute {
	return r.attr.At(col)
}

// SetAttrToEnd sets the attribute from beginIndex through the end of the
// row.
func (r *Row) SetAttrToEnd(beginIndex size.CellCountInt, attr attribute.Attribute) {
	r.attr.Replace(beginIndex, r.attr.Size(), attr)
}

// ReplaceAttrs substitutes every occurrence of one attribute value with
// another.
func (r *Row) ReplaceAttrs(toBeReplaced, replaceWith attribute.Attribute) {
	r.attr.ReplaceValues(toBeReplaced, replaceWith)
}

// Replace sets the attribute over the half-open column range
// [beginIndex, endIndex).
func (r *Row) Replace(beginIndex, endIndex size.CellCountInt, attr attribute.Attribute) {
	r.attr.Replace(beginIndex, endIndex, attr)
}

// GetHyperlinks collects the distinct hyperlink ids referenced by any of
// the row's attribute runs.
func (r *Row) GetHyperlinks() []hyperlink.ID {
	var ids []hyperlink.ID
	for _, run := range r.attr.Runs() {
		if !run.Value.IsHyperlink() {
			continue
		}
		seen := false
		for _, id := range ids {
			if id == run.Value.Hyperlink {
				seen = true
				break
			}
		}
		if !seen {
			ids = append(ids, run.Value.Hyperlink)
		}
	}
	return ids
}

// AssertIntegrity validates the row's core invariants: the index table is
// non-decreasing, anchored at zero, and its final entry is the used
// length within capacity; the attribute runs cover exactly the width.
func (r *Row) AssertIntegrity() {
	ok := len(r.indices) == int(r.width)+1 &&
		r.indices[0] == 0 &&
		int(r.indices[r.width]) <= len(r.chars) &&
		r.attr.Size() == r.width
	for i := size.CellCountInt(0); ok && i < r.width; i++ {
		ok = r.indices[i] <= r.indices[i+1]
	}
	if !ok {
		logger.DefaultLogger.Error(
			"row integrity violation",
			"width", r.width,
			"used", r.indices[r.width],
			"capacity", len(r.chars),
		)
	}
	utils.Assert(ok, "row integrity violation")
}
