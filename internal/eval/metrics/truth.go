package metrics

// Truth is the ground-truth set of document ids for one query.
// Membership is set-like; the first-occurrence order is kept because graded
// NDCG derives a document's grade from its position in the truth list.
type Truth struct {
	ids   []string
	index map[string]int
}

func NewTruth(ids []string) Truth {
	t := Truth{
		ids:   make([]string, 0, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		if _, ok := t.index[id]; ok {
			continue
		}
		t.index[id] = len(t.ids)
		t.ids = append(t.ids, id)
	}
	return t
}

func (t Truth) Contains(id string) bool {
	_, ok := t.index[id]
	return ok
}

// Index returns the position of id in the de-duplicated truth list.
func (t Truth) Index(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

func (t Truth) Len() int { return len(t.ids) }

func (t Truth) Empty() bool { return len(t.ids) == 0 }

func (t Truth) IDs() []string { return t.ids }

// cut returns pred[:k] clamped to the slice length. k <= 0 yields an empty window.
func cut(pred []string, k int) []string {
	if k <= 0 {
		return nil
	}
	return pred[:min(k, len(pred))]
}
