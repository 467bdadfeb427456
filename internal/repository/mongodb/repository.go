package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
	"github.com/mamadbah2/organiks/internal/repository"
)

const (
	poultryCollection = "poultry_records"
	eggsCollection    = "egg_records"
	pricesCollection  = "egg_prices"
	ordersCollection  = "egg_orders"
	countersColl      = "counters"
	reportsCollection = "daily_reports"

	recordIDCounter = "record_id"
)

// MongoDBRepository owns the MongoDB connection backing the record store and
// the daily report archive.
type MongoDBRepository struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
// Writes use majority, journaled acknowledgement so a record is durable
// before the request that created it returns.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*MongoDBRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	journal := true
	clientOptions := options.Client().
		ApplyURI(uri).
		SetWriteConcern(&writeconcern.WriteConcern{W: "majority", Journal: &journal})

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("connected to mongodb", zap.String("database", dbName))

	return &MongoDBRepository{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}, nil
}

// Repository exposes the record collections and the shared id counter.
func (r *MongoDBRepository) Repository() *repository.Repository {
	return &repository.Repository{
		Poultry: NewCollectionStore[models.PoultryRecord](r.db.Collection(poultryCollection)),
		Eggs:    NewCollectionStore[models.EggRecord](r.db.Collection(eggsCollection)),
		Prices:  NewCollectionStore[models.EggPrice](r.db.Collection(pricesCollection)),
		Orders:  NewCollectionStore[models.EggOrder](r.db.Collection(ordersCollection)),
		IDs:     NewCounter(r.db.Collection(countersColl), recordIDCounter),
	}
}

// SaveDailyReport stores the report, replacing any earlier report for the same day.
func (r *MongoDBRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	_, err := r.db.Collection(reportsCollection).ReplaceOne(ctx,
		bson.D{{Key: "date", Value: report.Date}},
		report,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save daily report: %w", err)
	}
	r.logger.Debug("daily report archived", zap.Time("date", report.Date))
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// CollectionStore maps one collection to repository.Store, using the record
// id as _id so the default index provides key order.
type CollectionStore[R models.Record] struct {
	coll *mongo.Collection
}

// NewCollectionStore wraps coll.
func NewCollectionStore[R models.Record](coll *mongo.Collection) *CollectionStore[R] {
	return &CollectionStore[R]{coll: coll}
}

// Put upserts the record under its id.
func (s *CollectionStore[R]) Put(ctx context.Context, r R) error {
	_, err := s.coll.ReplaceOne(ctx, idFilter(r.RecordID()), r, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put %s id=%d: %w", s.coll.Name(), r.RecordID(), err)
	}
	return nil
}

// Get loads the record stored under id.
func (s *CollectionStore[R]) Get(ctx context.Context, id uint64) (R, bool, error) {
	var record R
	err := s.coll.FindOne(ctx, idFilter(id)).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return record, false, nil
	}
	if err != nil {
		return record, false, fmt.Errorf("get %s id=%d: %w", s.coll.Name(), id, err)
	}
	return record, true, nil
}

// Remove deletes the record stored under id and returns it.
func (s *CollectionStore[R]) Remove(ctx context.Context, id uint64) (R, bool, error) {
	var record R
	err := s.coll.FindOneAndDelete(ctx, idFilter(id)).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return record, false, nil
	}
	if err != nil {
		return record, false, fmt.Errorf("remove %s id=%d: %w", s.coll.Name(), id, err)
	}
	return record, true, nil
}

// Scan reads the whole collection in ascending _id order.
func (s *CollectionStore[R]) Scan(ctx context.Context) ([]R, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.coll.Name(), err)
	}

	records := make([]R, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.coll.Name(), err)
	}
	return records, nil
}

// Counter allocates ids from a single document updated with $inc.
type Counter struct {
	coll *mongo.Collection
	name string
}

// NewCounter returns an allocator persisted as the document {_id: name}.
func NewCounter(coll *mongo.Collection, name string) *Counter {
	return &Counter{coll: coll, name: name}
}

type counterDocument struct {
	Seq int64 `bson:"seq"`
}

// NextID atomically increments the counter and returns the new value.
func (c *Counter) NextID(ctx context.Context) (uint64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDocument
	err := c.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: c.name}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("increment %s counter: %w", c.name, err)
	}
	// BSON integers are signed, so ids stop at math.MaxInt64.
	if doc.Seq <= 0 {
		return 0, repository.ErrIDSpaceExhausted
	}
	return uint64(doc.Seq), nil
}

func idFilter(id uint64) bson.D {
	return bson.D{{Key: "_id", Value: int64(id)}}
}
