package models

// PairKey canonicalizes the unordered pair {a, b}: the lexicographically
// smaller id comes first. Relationships and conversations are looked up,
// inserted and deleted through this key only.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}
