package widget

// Update is the per-event redraw pass. It hit-tests every button against the
// pointer in collection order, collects the tags of all hits, and wipes each
// button for the next frame. The first failure aborts the pass.
//
// Overlapping buttons all fire; callers dispatch the tags in the returned order.
func Update[T any](s Surface, buttons []Button[T]) ([]T, error) {
	var tags []T
	for _, b := range buttons {
		hit, err := b.Check(s)
		if err != nil {
			return nil, err
		}
		if hit {
			tags = append(tags, b.Tag)
		}
		if err := b.Wipe(s); err != nil {
			return nil, err
		}
	}
	return tags, nil
}
