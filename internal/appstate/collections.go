package appstate

func cloneAll[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, v := range items {
		if match(v) {
			return i
		}
	}
	return -1
}

// replaceAt returns a new slice with the element at i swapped for v.
func replaceAt[T any](items []T, i int, v T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = v
	return out
}

func appendTo[T any](items []T, v T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, v)
}

func prependTo[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}

func removeWhere[T any](items []T, match func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, v := range items {
		if match(v) {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// toggleID removes id when present and appends it otherwise. It reports
// whether id is present afterwards.
func toggleID(ids []string, id string) ([]string, bool) {
	if containsID(ids, id) {
		out, _ := removeWhere(ids, func(v string) bool { return v == id })
		return out, false
	}
	return appendTo(ids, id), true
}

func withoutID(ids []string, id string) []string {
	out, _ := removeWhere(ids, func(v string) bool { return v == id })
	return out
}

func withID(ids []string, id string) []string {
	if containsID(ids, id) {
		return ids
	}
	return appendTo(ids, id)
}
