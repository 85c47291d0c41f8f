package utils

// UniqueCount returns the number of distinct values across lists.
func UniqueCount(lists ...[]string) int {
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, v := range list {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
