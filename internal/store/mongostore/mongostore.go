// Package mongostore implements store.IStore on MongoDB. Collection names
// match the ones the dashboard database already uses.
package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

const (
	usersCollection     = "Users"
	customersCollection = "Customers"
	vehiclesCollection  = "Vehicles"
	rentalsCollection   = "Rentals"
	suppliersCollection = "Suppliers"
	paymentsCollection  = "Payments"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// ClientOptions returns client options for uri with the decimal codec
// registered.
func ClientOptions(uri string) *options.ClientOptions {
	return options.Client().ApplyURI(uri).SetRegistry(Registry())
}

// New connects to uri, pings the server and ensures indexes on database.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, ClientOptions(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	s := &Store{client: client, db: client.Database(database)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: models.FieldUsername, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	lookups := map[string]string{
		customersCollection: models.FieldEmail,
		vehiclesCollection:  models.FieldVehicleID,
		rentalsCollection:   models.FieldRentalID,
		suppliersCollection: models.FieldSupplierID,
		paymentsCollection:  models.FieldPaymentID,
	}
	for name, field := range lookups {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Users() store.Collection[models.User] {
	return collection[models.User]{coll: s.db.Collection(usersCollection)}
}

func (s *Store) Customers() store.Collection[models.Customer] {
	return collection[models.Customer]{coll: s.db.Collection(customersCollection)}
}

func (s *Store) Vehicles() store.Collection[models.Vehicle] {
	return collection[models.Vehicle]{coll: s.db.Collection(vehiclesCollection)}
}

func (s *Store) Rentals() store.Collection[models.Rental] {
	return collection[models.Rental]{coll: s.db.Collection(rentalsCollection)}
}

func (s *Store) Suppliers() store.Collection[models.Supplier] {
	return collection[models.Supplier]{coll: s.db.Collection(suppliersCollection)}
}

func (s *Store) Payments() store.Collection[models.Payment] {
	return collection[models.Payment]{coll: s.db.Collection(paymentsCollection)}
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type collection[T any] struct {
	coll *mongo.Collection
}

func (c collection[T]) FindOne(ctx context.Context, f store.Filter) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter(f)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c collection[T]) Find(ctx context.Context, f store.Filter) ([]T, error) {
	cur, err := c.coll.Find(ctx, filter(f))
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c collection[T]) Insert(ctx context.Context, doc *T) error {
	_, err := c.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}

func (c collection[T]) UpdateFields(ctx context.Context, f store.Filter, fields map[string]any) (int64, error) {
	if len(fields) == 0 {
		n, err := c.coll.CountDocuments(ctx, filter(f), options.Count().SetLimit(1))
		return n, err
	}
	res, err := c.coll.UpdateOne(ctx, filter(f), bson.M{"$set": bson.M(fields)})
	if mongo.IsDuplicateKeyError(err) {
		return 0, store.ErrDuplicate
	}
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (c collection[T]) DeleteOne(ctx context.Context, f store.Filter) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, filter(f))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c collection[T]) DeleteAll(ctx context.Context) (int64, error) {
	res, err := c.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func filter(f store.Filter) bson.M {
	if f == nil {
		return bson.M{}
	}
	return bson.M(f)
}
