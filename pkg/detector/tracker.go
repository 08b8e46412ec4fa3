package detector

// tracker holds the per-run loop and hop bookkeeping. It is created by Detect
// and never outlives or escapes a single run.
type tracker struct {
	seed         string
	visited      map[string]struct{}
	hops         int
	maxRedirects int
}

func newTracker(seed string, maxRedirects int) *tracker {
	return &tracker{
		seed:         seed,
		visited:      make(map[string]struct{}),
		hops:         1,
		maxRedirects: maxRedirects,
	}
}

// admit records next as the upcoming hop. It fails before next is fetched when
// next was already reached in this run or when following it would go past
// maxRedirects hops.
func (t *tracker) admit(next string) error {
	if _, seen := t.visited[next]; seen || next == t.seed {
		return ErrLoopedRedirects
	}
	t.visited[next] = struct{}{}

	t.hops++
	if t.hops > t.maxRedirects {
		return ErrMaxRedirects
	}
	return nil
}
