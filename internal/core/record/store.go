package record

// Collection is the immutable in-memory base record store, built once from
// the loaded dataset. It preserves load order, which is the canonical
// ordering for browsing and filtering.
type Collection struct {
	items []BaseRecord
	index map[string]int
}

// NewCollection builds a collection from loaded records. When the dataset
// carries duplicate ids the first occurrence wins.
func NewCollection(items []BaseRecord) *Collection {
	index := make(map[string]int, len(items))
	for position, item := range items {
		if _, exists := index[item.ID]; !exists {
			index[item.ID] = position
		}
	}
	return &Collection{items: items, index: index}
}

// All returns the records in load order. Callers must not mutate the result.
func (collection *Collection) All() []BaseRecord {
	return collection.items
}

// Get looks up a record by id.
func (collection *Collection) Get(id string) (BaseRecord, bool) {
	position, found := collection.index[id]
	if !found {
		return BaseRecord{}, false
	}
	return collection.items[position], true
}

// Len reports the number of records in the collection.
func (collection *Collection) Len() int {
	return len(collection.items)
}
