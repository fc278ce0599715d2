package bst

type (
	// Defaultdb is a plain map-backed store with no ordering. The bst
	// command uses it as the baseline the tree is benchmarked against.
	Defaultdb[K comparable, V comparable] struct {
		mp map[K]V
	}
)

// NewDefaultdb creates an empty baseline store.
func NewDefaultdb[K comparable, V comparable]() *Defaultdb[K, V] {
	return &Defaultdb[K, V]{mp: make(map[K]V)}
}

func (db *Defaultdb[K, V]) Get(key K) (V, bool) {
	value, ok := db.mp[key]
	return value, ok
}

func (db *Defaultdb[K, V]) Set(key K, value V) {
	db.mp[key] = value
}

func (db *Defaultdb[K, V]) Delete(key K) {
	delete(db.mp, key)
}

// GetValue scans for the first key holding the given value.
func (db *Defaultdb[K, V]) GetValue(value V) (K, bool) {
	for key, v := range db.mp {
		if v == value {
			return key, true
		}
	}
	var zero K
	return zero, false
}

func (db *Defaultdb[K, V]) Close() {
	db.mp = nil
}

func (db *Defaultdb[K, V]) Len() int {
	return len(db.mp)
}

func (db *Defaultdb[K, V]) Keys() []K {
	keys := make([]K, 0, len(db.mp))
	for key := range db.mp {
		keys = append(keys, key)
	}
	return keys
}
