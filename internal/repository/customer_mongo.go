package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syemed/intake/internal/model"
)

const (
	mongoDatabase           = "syemed"
	customersCollection     = "clientes"
	numberSeriesCollection  = "series"
	customersNumberSeriesID = "clientes"
)

// mongoCustomer persists the searchable haystack alongside the customer,
// the counterpart of the busqueda_texto generated column in Postgres.
type mongoCustomer struct {
	model.Customer `bson:",inline"`
	SearchText     string `bson:"busqueda_texto"`
}

type mongoCustomerRepository struct {
	customers *mongo.Collection
	series    *mongo.Collection
}

func NewMongoCustomerRepository(client *mongo.Client) CustomerRepository {
	db := client.Database(mongoDatabase)
	return &mongoCustomerRepository{
		customers: db.Collection(customersCollection),
		series:    db.Collection(numberSeriesCollection),
	}
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var doc mongoCustomer
	err := r.customers.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc.Customer, nil
}

func (r *mongoCustomerRepository) FindCandidates(ctx context.Context, query string, customerType string) ([]model.Customer, error) {
	filter := bson.M{"activo": true}
	if customerType != "" {
		filter["tipo_cliente"] = customerType
	}

	inclusion := bson.A{
		bson.M{"busqueda_texto": primitive.Regex{Pattern: regexp.QuoteMeta(model.LowerTrim(query))}},
	}
	if normalized := model.NormalizeTaxID(query); normalized != "" {
		inclusion = append(inclusion, bson.M{"cuit_dni": primitive.Regex{Pattern: regexp.QuoteMeta(normalized)}})
	}
	filter["$or"] = inclusion

	cursor, err := r.customers.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := make([]model.Customer, 0)
	for cursor.Next(ctx) {
		var doc mongoCustomer
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		customers = append(customers, doc.Customer)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) ExistsByTaxID(ctx context.Context, normalizedTaxID string) (bool, error) {
	count, err := r.customers.CountDocuments(ctx, bson.M{"cuit_dni": normalizedTaxID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	c.ID = id

	doc := mongoCustomer{Customer: c, SearchText: c.SearchText()}
	if _, err := r.customers.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.Customer{}, ErrDuplicateTaxID
		}
		return model.Customer{}, err
	}
	return c, nil
}

// nextID reserves the next customer number from the series collection, so
// both backends hand out compact numeric identifiers.
func (r *mongoCustomerRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	res := r.series.FindOneAndUpdate(ctx,
		bson.M{"_id": customersNumberSeriesID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	)

	var series struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&series); err != nil {
		return 0, err
	}
	return series.Seq, nil
}
