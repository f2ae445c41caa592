package corpus

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scenegen/scenegen/pkg/record"
)

// MongoStore persists scene records in a MongoDB collection, keyed by the
// record ID with the scene name indexed for lookup. Use it when several
// generation workers feed one shared corpus.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB instance at uri and uses the given
// database and collection. The connection is verified with a ping.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", uri, err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Save upserts the scene under its record ID.
func (m *MongoStore) Save(ctx context.Context, s *record.Scene) error {
	if s.ID == "" {
		return fmt.Errorf("scene has no id")
	}
	opts := options.Replace().SetUpsert(true)
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s, opts)
	return err
}

// List returns the keys of all stored scenes in lexical order.
func (m *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "name": 1}).
		SetSort(bson.M{"name": 1})
	cur, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var keys []string
	for cur.Next(ctx) {
		var doc struct {
			ID   string `bson:"_id"`
			Name string `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		if doc.Name != "" {
			keys = append(keys, doc.Name)
		} else {
			keys = append(keys, doc.ID)
		}
	}
	return keys, cur.Err()
}

// Load retrieves a scene by name or record ID.
func (m *MongoStore) Load(ctx context.Context, k string) (*record.Scene, error) {
	filter := bson.M{"$or": bson.A{bson.M{"name": k}, bson.M{"_id": k}}}

	var s record.Scene
	err := m.coll.FindOne(ctx, filter).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %q", ErrSceneNotFound, k)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Close disconnects from MongoDB.
func (m *MongoStore) Close() error {
	return m.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
