package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Logical collections
const (
	CollectionUsers          = "Users"
	CollectionPosts          = "Posts"
	CollectionComments       = "Comments"
	CollectionCategories     = "Categories"
	CollectionNotifications  = "Notifications"
	CollectionUserActivities = "UserActivities"

	// Historical data was written under a lower-cased posts collection;
	// the post repository falls back to it on a missed primary lookup.
	CollectionPostsLegacy = "posts"
)

// ErrNotFound is returned when the referenced document does not exist
var ErrNotFound = errors.New("store: document not found")

// QueryOptions controls ordering and result size of a Query
type QueryOptions struct {
	OrderBy    string
	Descending bool
	Limit      int64
	Skip       int64
}

// FieldUpdate is a single entry of a BatchUpdate
type FieldUpdate struct {
	Collection string
	ID         string
	Fields     bson.M
}

// Store is the document-store contract the service layer depends on.
// Documents are addressed by collection plus string id; Increment,
// ArrayUnion and ArrayRemove are atomic at document granularity, which is
// the only concurrency guarantee the system relies on. Implementations
// return ErrNotFound for a missing document on Get, Update, Delete and the
// atomic field operations.
type Store interface {
	Get(ctx context.Context, collection, id string, out interface{}) error
	// Query matches documents by field equality; out must be a pointer to
	// a slice of the document type.
	Query(ctx context.Context, collection string, filter bson.M, opts *QueryOptions, out interface{}) error
	// Insert persists doc and returns its id, generating one when the
	// document does not carry an _id of its own.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Update(ctx context.Context, collection, id string, fields bson.M) error
	Delete(ctx context.Context, collection, id string) error
	Increment(ctx context.Context, collection, id, field string, delta int64) error
	ArrayUnion(ctx context.Context, collection, id, field string, value interface{}) error
	ArrayRemove(ctx context.Context, collection, id, field string, value interface{}) error
	BatchUpdate(ctx context.Context, updates []FieldUpdate) error
}
