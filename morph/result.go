package morph

// Result holds the outcome of a search:
//   - Source, Target: vocabulary identities of the endpoints.
//   - Found: whether Target was reached.
//   - one discovery Record per vocabulary word.
type Result struct {
	Source     int
	Target     int
	Discipline Discipline
	Found      bool

	records    []Record
	edits      []Edit // nil unless edit tracking was requested
	discovered int
	expanded   int
}

func newResult(n, src, dst int, d Discipline, trackEdits bool) *Result {
	res := &Result{
		Source:     src,
		Target:     dst,
		Discipline: d,
		records:    make([]Record, n),
	}
	for i := range res.records {
		res.records[i].Parent = -1
	}
	if trackEdits {
		res.edits = make([]Edit, n)
	}
	return res
}

// Discovered reports how many words left the Undiscovered state,
// the source included.
func (r *Result) Discovered() int {
	return r.discovered
}

// Expanded reports how many words had their neighbors generated.
func (r *Result) Expanded() int {
	return r.expanded
}

// Record returns the discovery record of id.
func (r *Result) Record(id int) Record {
	return r.records[id]
}

// EditOf returns the edit that produced id from its parent. It reports false
// when edit tracking was off or id has no parent.
func (r *Result) EditOf(id int) (Edit, bool) {
	if r.edits == nil || r.records[id].State != DiscoveredWithParent {
		return Edit{}, false
	}
	return r.edits[id], true
}

// Path reconstructs the morph from Source to Target by walking parent links
// back from Target. Returns ErrNoPath if the search did not find Target.
func (r *Result) Path() ([]int, error) {
	if !r.Found {
		return nil, ErrNoPath
	}
	path := []int{r.Target}
	for cur := r.Target; cur != r.Source; {
		cur = r.records[cur].Parent
		if cur < 0 || len(path) > len(r.records) {
			return nil, ErrNoPath
		}
		path = append(path, cur)
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
