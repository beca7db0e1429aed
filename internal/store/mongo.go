package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on a MongoDB database. Increment, ArrayUnion and
// ArrayRemove map onto $inc, $addToSet and $pull, which are atomic per
// document on the server.
type Mongo struct {
	db *mongo.Database
}

// NewMongo creates a Mongo store on the given database
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Get(ctx context.Context, collection, id string, out interface{}) error {
	err := m.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) Query(ctx context.Context, collection string, filter bson.M, opts *QueryOptions, out interface{}) error {
	findOpts := options.Find()
	if opts != nil {
		if opts.OrderBy != "" {
			dir := 1
			if opts.Descending {
				dir = -1
			}
			findOpts.SetSort(bson.D{{Key: opts.OrderBy, Value: dir}})
		}
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
		if opts.Skip > 0 {
			findOpts.SetSkip(opts.Skip)
		}
	}
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := m.db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	id, _ := fields["_id"].(string)
	if id == "" {
		id = primitive.NewObjectID().Hex()
		fields["_id"] = id
	}
	if _, err := m.db.Collection(collection).InsertOne(ctx, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (m *Mongo) Update(ctx context.Context, collection, id string, fields bson.M) error {
	return m.updateByID(ctx, collection, id, bson.M{"$set": fields})
}

func (m *Mongo) Delete(ctx context.Context, collection, id string) error {
	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Increment(ctx context.Context, collection, id, field string, delta int64) error {
	return m.updateByID(ctx, collection, id, bson.M{"$inc": bson.M{field: delta}})
}

func (m *Mongo) ArrayUnion(ctx context.Context, collection, id, field string, value interface{}) error {
	return m.updateByID(ctx, collection, id, bson.M{"$addToSet": bson.M{field: value}})
}

func (m *Mongo) ArrayRemove(ctx context.Context, collection, id, field string, value interface{}) error {
	return m.updateByID(ctx, collection, id, bson.M{"$pull": bson.M{field: value}})
}

func (m *Mongo) BatchUpdate(ctx context.Context, updates []FieldUpdate) error {
	// Group per collection; BulkWrite is per-collection in the driver.
	grouped := make(map[string][]mongo.WriteModel)
	for _, u := range updates {
		model := mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": u.ID}).
			SetUpdate(bson.M{"$set": u.Fields})
		grouped[u.Collection] = append(grouped[u.Collection], model)
	}
	for collection, models := range grouped {
		if _, err := m.db.Collection(collection).BulkWrite(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mongo) updateByID(ctx context.Context, collection, id string, update bson.M) error {
	res, err := m.db.Collection(collection).UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
