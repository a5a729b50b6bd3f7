package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the MongoDB collection holding chat messages.
const CollectionName = "chat_history"

type messageDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	Message   string        `bson:"message"`
	Sender    string        `bson:"sender"`
	Timestamp time.Time     `bson:"timestamp"`
}

func (d messageDocument) toModel() *models.ChatMessage {
	return &models.ChatMessage{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Message:   d.Message,
		Sender:    models.Sender(d.Sender),
		Timestamp: d.Timestamp.UTC(),
	}
}

// collection is the part of *mongo.Collection used by MongoRepository.
type collection interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
}

type indexCreator interface {
	CreateOne(ctx context.Context, model mongo.IndexModel, opts ...options.Lister[options.CreateIndexesOptions]) (string, error)
}

// transactor runs fn inside a multi-document transaction.
type transactor func(ctx context.Context, fn func(ctx context.Context) error) error

// MongoRepository stores messages in MongoDB. BSON dates have millisecond
// resolution, so timestamps come from a millisecond monotonic clock.
type MongoRepository struct {
	coll    collection
	indexes indexCreator
	inTx    transactor
	clock   *monotonicClock
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	coll := db.Collection(CollectionName)
	return newMongoRepository(coll, coll.Indexes(), sessionTransactor(db.Client()))
}

func newMongoRepository(coll collection, indexes indexCreator, inTx transactor) *MongoRepository {
	return &MongoRepository{
		coll:    coll,
		indexes: indexes,
		inTx:    inTx,
		clock:   newMonotonicClock(time.Millisecond),
	}
}

// sessionTransactor uses a client session transaction. This requires a
// replica set or sharded cluster; a standalone server rejects it.
func sessionTransactor(client *mongo.Client) transactor {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		sess, err := client.StartSession()
		if err != nil {
			return err
		}
		defer sess.EndSession(ctx)

		_, err = sess.WithTransaction(ctx, func(ctx context.Context) (any, error) {
			return nil, fn(ctx)
		})
		return err
	}
}

// EnsureIndexes creates the (user_id, timestamp) index used by ListByUser.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.indexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: 1}},
		Options: options.Index().SetName("chat_history_user_ts"),
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) newDocument(msg *models.ChatMessage) messageDocument {
	return messageDocument{
		ID:        bson.NewObjectID(),
		UserID:    msg.UserID,
		Message:   msg.Message,
		Sender:    string(msg.Sender),
		Timestamp: r.clock.Next(),
	}
}

func (r *MongoRepository) insert(ctx context.Context, msg *models.ChatMessage) error {
	doc := r.newDocument(msg)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	msg.ID = doc.ID.Hex()
	msg.Timestamp = doc.Timestamp
	return nil
}

func (r *MongoRepository) Append(ctx context.Context, msg *models.ChatMessage) error {
	return r.insert(ctx, msg)
}

// AppendTurn writes both messages in one multi-document transaction.
func (r *MongoRepository) AppendTurn(ctx context.Context, question, answer *models.ChatMessage) error {
	err := r.inTx(ctx, func(ctx context.Context) error {
		if err := r.insert(ctx, question); err != nil {
			return err
		}
		return r.insert(ctx, answer)
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) ListByUser(ctx context.Context, userID string) ([]*models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	result := make([]*models.ChatMessage, 0)
	for cur.Next(ctx) {
		var doc messageDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
