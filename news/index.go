package news

import "sort"

// SortIndex orders items newest-first in place. Items without a timestamp
// sort after every dated item; the sort is stable, so ties and undated
// items keep the order the backend returned them in.
func SortIndex(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Timestamp, items[j].Timestamp
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
}

// Match scans items in returned order and reports the first entry whose
// title equals the submitted title. When byAuthor is set the author must
// match too. Duplicate (title, author) pairs resolve to the first hit;
// later duplicates are unreachable through this lookup.
func Match(items []Item, title, author string, byAuthor bool) (Item, bool) {
	for _, it := range items {
		if it.Title != title {
			continue
		}
		if byAuthor && it.Author != author {
			continue
		}
		return it, true
	}
	return Item{}, false
}
