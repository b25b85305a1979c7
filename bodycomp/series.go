package bodycomp

import "sort"

// Series is the assessment history of one subject in canonical order:
// newest first, with equal timestamps ordered by later insertion first.
// A Series never hands out its backing slice.
type Series struct {
	items []Assessment
}

// NewSeries orders records, which must be given in insertion order (oldest
// insert first). The input slice is copied and not modified.
func NewSeries(records []Assessment) Series {
	type seqd struct {
		a   Assessment
		seq int
	}
	tmp := make([]seqd, len(records))
	for i, r := range records {
		tmp[i] = seqd{a: r, seq: i}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		ti, tj := tmp[i].a.Timestamp, tmp[j].a.Timestamp
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return tmp[i].seq > tmp[j].seq
	})

	items := make([]Assessment, len(tmp))
	for i, s := range tmp {
		items[i] = s.a
	}
	return Series{items: items}
}

func (s Series) Len() int { return len(s.items) }

// Current is the most recent assessment.
func (s Series) Current() (Assessment, bool) {
	if len(s.items) == 0 {
		return Assessment{}, false
	}
	return s.items[0], true
}

// Previous is the assessment just before Current.
func (s Series) Previous() (Assessment, bool) {
	if len(s.items) < 2 {
		return Assessment{}, false
	}
	return s.items[1], true
}

// Initial is the oldest assessment. For a single-record series it is the
// same record as Current.
func (s Series) Initial() (Assessment, bool) {
	if len(s.items) == 0 {
		return Assessment{}, false
	}
	return s.items[len(s.items)-1], true
}

// NewestFirst returns a copy in display order.
func (s Series) NewestFirst() []Assessment {
	out := make([]Assessment, len(s.items))
	copy(out, s.items)
	return out
}

// OldestFirst returns a copy in chronological order, for charts.
func (s Series) OldestFirst() []Assessment {
	out := make([]Assessment, len(s.items))
	for i, a := range s.items {
		out[len(s.items)-1-i] = a
	}
	return out
}
