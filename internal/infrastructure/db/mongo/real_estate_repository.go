package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

const collectionRealEstates = "real_estates"

const indexTimeout = 30 * time.Second

type RealEstateRepository struct {
	col *mongo.Collection
}

func NewRealEstateRepository(db *mongo.Database) *RealEstateRepository {
	return &RealEstateRepository{col: db.Collection(collectionRealEstates)}
}

type mongoRealEstate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Address   string             `bson:"address"`
	Price     float64            `bson:"price"`
	Image     string             `bson:"image,omitempty"`
	Area      *float64           `bson:"area,omitempty"`
	Location  string             `bson:"location,omitempty"`
	Bedrooms  *int               `bson:"bedrooms,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m mongoRealEstate) toDomain() domain.RealEstate {
	return domain.RealEstate{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Address:   m.Address,
		Price:     m.Price,
		Image:     m.Image,
		Area:      m.Area,
		Location:  m.Location,
		Bedrooms:  m.Bedrooms,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *RealEstateRepository) Create(ctx context.Context, re *domain.RealEstate) (*domain.RealEstate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoRealEstate{
		Name:      re.Name,
		Address:   re.Address,
		Price:     re.Price,
		Image:     re.Image,
		Area:      re.Area,
		Location:  re.Location,
		Bedrooms:  re.Bedrooms,
		CreatedAt: re.CreatedAt,
		UpdatedAt: re.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert real estate: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *RealEstateRepository) FindByID(ctx context.Context, id string) (*domain.RealEstate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRealEstateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoRealEstate
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRealEstateNotFound
		}
		return nil, fmt.Errorf("find real estate: %w", err)
	}
	re := m.toDomain()
	return &re, nil
}

func (r *RealEstateRepository) List(ctx context.Context, limit, offset int) ([]domain.RealEstate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetLimit(int64(limit)).SetSkip(int64(offset))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list real estates: %w", err)
	}
	return r.decodeAll(ctx, cur)
}

// Search builds a conjunctive filter: each bound is only added when supplied,
// so an omitted parameter never acts as a zero bound.
func (r *RealEstateRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]domain.RealEstate, error) {
	query := bson.M{}

	if rng := rangeFilter(filter.PriceMin, filter.PriceMax); rng != nil {
		query["price"] = rng
	}
	if rng := rangeFilter(filter.AreaMin, filter.AreaMax); rng != nil {
		query["area"] = rng
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}
	if filter.Bedrooms != nil {
		query["bedrooms"] = *filter.Bedrooms
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search real estates: %w", err)
	}
	return r.decodeAll(ctx, cur)
}

func rangeFilter(min, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	rng := bson.M{}
	if min != nil {
		rng["$gte"] = *min
	}
	if max != nil {
		rng["$lte"] = *max
	}
	return rng
}

func (r *RealEstateRepository) Update(ctx context.Context, id string, patch ports.RealEstatePatch) (*domain.RealEstate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRealEstateNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Area != nil {
		set["area"] = *patch.Area
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Bedrooms != nil {
		set["bedrooms"] = *patch.Bedrooms
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoRealEstate
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRealEstateNotFound
		}
		return nil, fmt.Errorf("update real estate: %w", err)
	}
	re := m.toDomain()
	return &re, nil
}

func (r *RealEstateRepository) Delete(ctx context.Context, id string) (*domain.RealEstate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRealEstateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoRealEstate
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRealEstateNotFound
		}
		return nil, fmt.Errorf("delete real estate: %w", err)
	}
	re := m.toDomain()
	return &re, nil
}

func (r *RealEstateRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			// A malformed id cannot resolve; it simply contributes no match.
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("count real estates: %w", err)
	}
	return n, nil
}

func (r *RealEstateRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the search-filter indexes.
func (r *RealEstateRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "area", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "bedrooms", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *RealEstateRepository) decodeAll(ctx context.Context, cur *mongo.Cursor) ([]domain.RealEstate, error) {
	defer cur.Close(ctx)

	out := []domain.RealEstate{}
	for cur.Next(ctx) {
		var m mongoRealEstate
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode real estate: %w", err)
		}
		out = append(out, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate real estates: %w", err)
	}
	return out, nil
}
