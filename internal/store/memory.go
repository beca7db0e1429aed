package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used by the tests. Documents go through a
// bson round-trip on every read and write so field tags behave exactly as
// they do against MongoDB.
type Memory struct {
	mu     sync.Mutex
	docs   map[string]map[string]bson.M
	order  map[string][]string
	nextID int
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		docs:  make(map[string]map[string]bson.M),
		order: make(map[string][]string),
	}
}

func (m *Memory) Get(ctx context.Context, collection, id string, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[collection][id]
	if !ok {
		return ErrNotFound
	}
	return decodeInto(doc, out)
}

func (m *Memory) Query(ctx context.Context, collection string, filter bson.M, opts *QueryOptions, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matches []bson.M
	for _, id := range m.order[collection] {
		doc, ok := m.docs[collection][id]
		if !ok {
			continue
		}
		if matchesFilter(doc, filter) {
			matches = append(matches, doc)
		}
	}

	if opts != nil {
		if opts.OrderBy != "" {
			field, desc := opts.OrderBy, opts.Descending
			sort.SliceStable(matches, func(i, j int) bool {
				if desc {
					return lessValue(matches[j][field], matches[i][field])
				}
				return lessValue(matches[i][field], matches[j][field])
			})
		}
		if opts.Skip > 0 {
			if opts.Skip >= int64(len(matches)) {
				matches = nil
			} else {
				matches = matches[opts.Skip:]
			}
		}
		if opts.Limit > 0 && int64(len(matches)) > opts.Limit {
			matches = matches[:opts.Limit]
		}
	}

	outv := reflect.ValueOf(out)
	if outv.Kind() != reflect.Ptr || outv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: query result must be a pointer to a slice, got %T", out)
	}
	slicev := outv.Elem()
	result := reflect.MakeSlice(slicev.Type(), 0, len(matches))
	elemType := slicev.Type().Elem()
	for _, doc := range matches {
		elem := reflect.New(elemType)
		if err := decodeInto(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slicev.Set(result)
	return nil
}

func (m *Memory) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fields, err := normalize(doc)
	if err != nil {
		return "", err
	}
	id, _ := fields["_id"].(string)
	if id == "" {
		m.nextID++
		id = fmt.Sprintf("mem-%06d", m.nextID)
		fields["_id"] = id
	}
	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string]bson.M)
	}
	if _, exists := m.docs[collection][id]; !exists {
		m.order[collection] = append(m.order[collection], id)
	}
	m.docs[collection][id] = fields
	return id, nil
}

func (m *Memory) Update(ctx context.Context, collection, id string, fields bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[collection][id]
	if !ok {
		return ErrNotFound
	}
	norm, err := normalize(fields)
	if err != nil {
		return err
	}
	for k, v := range norm {
		doc[k] = v
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[collection][id]; !ok {
		return ErrNotFound
	}
	delete(m.docs[collection], id)
	return nil
}

func (m *Memory) Increment(ctx context.Context, collection, id, field string, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[collection][id]
	if !ok {
		return ErrNotFound
	}
	doc[field] = toInt64(doc[field]) + delta
	return nil
}

func (m *Memory) ArrayUnion(ctx context.Context, collection, id, field string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[collection][id]
	if !ok {
		return ErrNotFound
	}
	arr, _ := doc[field].(primitive.A)
	for _, v := range arr {
		if v == value {
			return nil
		}
	}
	doc[field] = append(arr, value)
	return nil
}

func (m *Memory) ArrayRemove(ctx context.Context, collection, id, field string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[collection][id]
	if !ok {
		return ErrNotFound
	}
	arr, _ := doc[field].(primitive.A)
	kept := make(primitive.A, 0, len(arr))
	for _, v := range arr {
		if v != value {
			kept = append(kept, v)
		}
	}
	doc[field] = kept
	return nil
}

func (m *Memory) BatchUpdate(ctx context.Context, updates []FieldUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range updates {
		doc, ok := m.docs[u.Collection][u.ID]
		if !ok {
			// Bulk update-one models skip unmatched documents.
			continue
		}
		norm, err := normalize(u.Fields)
		if err != nil {
			return err
		}
		for k, v := range norm {
			doc[k] = v
		}
	}
	return nil
}

func normalize(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func decodeInto(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func matchesFilter(doc bson.M, filter bson.M) bool {
	for k, want := range filter {
		if !looseEqual(doc[k], want) {
			return false
		}
	}
	return true
}

// looseEqual compares a stored bson value against a filter value, promoting
// numeric types and matching array membership the way the server would.
func looseEqual(got, want interface{}) bool {
	if got == nil || want == nil {
		return got == want
	}
	if arr, ok := got.(primitive.A); ok {
		for _, v := range arr {
			if looseEqual(v, want) {
				return true
			}
		}
		return false
	}
	gf, gok := numeric(got)
	wf, wok := numeric(want)
	if gok && wok {
		return gf == wf
	}
	return got == want
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

func lessValue(a, b interface{}) bool {
	switch av := a.(type) {
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	af, aok := numeric(a)
	bf, bok := numeric(b)
	if aok && bok {
		return af < bf
	}
	return false
}
