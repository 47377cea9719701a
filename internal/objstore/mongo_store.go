package objstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// objectDocument is one object; documents are capped at 16MB, which bounds photo size.
type objectDocument struct {
	Key          string     `bson:"_id"`
	Body         []byte     `bson:"body"`
	ContentType  string     `bson:"contentType"`
	CacheControl string     `bson:"cacheControl"`
	UpdatedAt    time.Time  `bson:"updatedAt"`
	ExpiresAt    *time.Time `bson:"expiresAt,omitempty"`
}

// MongoStore keeps a bucket as a collection keyed by object key. A TTL index on
// expiresAt lets mongod drop objects after their max-age.
type MongoStore struct {
	bucket     string
	collection *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(client *mongo.Client, dbName, bucket string) *MongoStore {
	return &MongoStore{
		bucket:     bucket,
		collection: client.Database(dbName).Collection(bucket),
	}
}

func (s *MongoStore) Bucket() string {
	return s.bucket
}

// EnsureIndexes creates the expiry index. It is safe to call on every start.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0).SetName("expiresAt_ttl"),
	})
	if err != nil {
		return fmt.Errorf("failed to create ttl index on %s: %w", s.bucket, err)
	}

	return nil
}

func (s *MongoStore) Download(ctx context.Context, key string) (Object, error) {
	var doc objectDocument
	if err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Object{}, ErrNotFound
		}
		return Object{}, fmt.Errorf("failed to find object %s: %w", key, err)
	}

	return Object{
		Body:         doc.Body,
		ContentType:  doc.ContentType,
		CacheControl: doc.CacheControl,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func (s *MongoStore) Upload(ctx context.Context, key string, body []byte, opts UploadOptions) error {
	l := ctxlogger.GetLogger(ctx)
	now := time.Now().UTC()

	doc := objectDocument{
		Key:          key,
		Body:         body,
		ContentType:  opts.ContentType,
		CacheControl: CacheControl(opts.MaxAge),
		UpdatedAt:    now,
	}
	if opts.MaxAge > 0 {
		expiresAt := now.Add(opts.MaxAge)
		doc.ExpiresAt = &expiresAt
	}

	if !opts.Upsert {
		if _, err := s.collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to insert object %s: %w", key, err)
		}
		return nil
	}

	filter := bson.D{{Key: "_id", Value: key}}
	if _, err := s.collection.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true)); err != nil {
		l.Error("Error on upsert object", "bucket", s.bucket, "key", key, "error", err)
		return fmt.Errorf("failed to upsert object %s: %w", key, err)
	}

	return nil
}
