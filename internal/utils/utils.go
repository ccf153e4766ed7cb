package utils

func Distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	u := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		u = append(u, item)
	}
	return u
}
