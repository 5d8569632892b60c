package floatmenu

// Option is one selectable entry. Options are identified by their position.
type Option[T comparable] struct {
	Label       string
	Description string
	Icon        string
	// Group partitions adjacent options; a divider separates options whose
	// groups differ. Empty means no group.
	Group   string
	Value   T
	OnClick func(value T)
}

// needsDivider reports whether a divider goes between prev and cur.
func needsDivider[T comparable](prev, cur Option[T]) bool {
	return prev.Group != cur.Group
}

// DividerIndices returns the indices of options that are preceded by a
// divider.
func DividerIndices[T comparable](opts []Option[T]) []int {
	var out []int
	for i := 1; i < len(opts); i++ {
		if needsDivider(opts[i-1], opts[i]) {
			out = append(out, i)
		}
	}
	return out
}
