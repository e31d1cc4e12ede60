package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lovelyhome/carehome/internal/domain/models"
)

const reportsCollection = "occupancy_reports"

// Repository archives daily occupancy reports. The archive is write-mostly:
// nothing in the service reads reports back into the entity store.
type Repository interface {
	SaveOccupancyReport(ctx context.Context, report models.OccupancyReport) error
	LatestOccupancyReport(ctx context.Context) (*models.OccupancyReport, error)
}

// MongoDBRepository implements Repository on a MongoDB collection.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository connects to uri and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: reportsCollection,
	}, nil
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// SaveOccupancyReport stores a report, replacing any earlier report for the
// same day.
func (r *MongoDBRepository) SaveOccupancyReport(ctx context.Context, report models.OccupancyReport) error {
	_, err := r.collection().ReplaceOne(ctx,
		bson.M{"date": report.Date},
		report,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save occupancy report: %w", err)
	}
	return nil
}

// LatestOccupancyReport returns the most recent report, or nil when the
// archive is empty.
func (r *MongoDBRepository) LatestOccupancyReport(ctx context.Context) (*models.OccupancyReport, error) {
	var report models.OccupancyReport
	err := r.collection().FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest occupancy report: %w", err)
	}
	return &report, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
