package basket

// Line is one product's presence in a shop's basket.
type Line struct {
	ID      string `json:"id"`
	Qty     int    `json:"qty"`
	Checked bool   `json:"checked"`
}

// Basket maps a shop to its ordered sequence of lines. Insertion order is
// preserved; a shop key never exists with an empty sequence. All mutations
// go through the pure transformation functions below, which return a new
// value and leave the input untouched.
type Basket map[string][]Line

// New returns an empty basket.
func New() Basket {
	return Basket{}
}

// Clone returns a deep copy of the basket.
func (b Basket) Clone() Basket {
	out := make(Basket, len(b))
	for shop, lines := range b {
		out[shop] = append([]Line(nil), lines...)
	}
	return out
}

// Lines returns the line sequence for a shop, nil when the shop is absent.
func (b Basket) Lines(shop string) []Line {
	return b[shop]
}

// Find locates a line by shop and product id.
func (b Basket) Find(shop, id string) (Line, bool) {
	for _, line := range b[shop] {
		if line.ID == id {
			return line, true
		}
	}
	return Line{}, false
}

// LineCount reports the total number of lines across all shops.
func (b Basket) LineCount() int {
	total := 0
	for _, lines := range b {
		total += len(lines)
	}
	return total
}

// Add appends a new line with quantity 1, or increments the quantity of an
// existing line for the same product. Duplicates always collapse.
func Add(b Basket, shop, id string) Basket {
	next := b.Clone()
	lines := next[shop]
	for i, line := range lines {
		if line.ID == id {
			lines[i].Qty++
			return next
		}
	}
	next[shop] = append(lines, Line{ID: id, Qty: 1})
	return next
}

// Remove deletes the matching line. The shop key disappears once its line
// sequence becomes empty.
func Remove(b Basket, shop, id string) Basket {
	next := b.Clone()
	lines := next[shop]
	kept := lines[:0]
	for _, line := range lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		delete(next, shop)
		return next
	}
	next[shop] = kept
	return next
}

// ToggleChecked flips the purchased flag of the matching line.
func ToggleChecked(b Basket, shop, id string) Basket {
	next := b.Clone()
	for i, line := range next[shop] {
		if line.ID == id {
			next[shop][i].Checked = !line.Checked
			break
		}
	}
	return next
}

// ClearChecked removes all checked lines for the shop, deleting the shop
// key when nothing survives.
func ClearChecked(b Basket, shop string) Basket {
	next := b.Clone()
	lines := next[shop]
	kept := lines[:0]
	for _, line := range lines {
		if !line.Checked {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		delete(next, shop)
		return next
	}
	next[shop] = kept
	return next
}

// SetQuantity replaces the line's quantity. Quantities below 1 are rejected
// and the basket is returned unchanged.
func SetQuantity(b Basket, shop, id string, qty int) Basket {
	if qty < 1 {
		return b
	}
	next := b.Clone()
	for i, line := range next[shop] {
		if line.ID == id {
			next[shop][i].Qty = qty
			break
		}
	}
	return next
}
