package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

const collectionVisits = "visits"

type VisitRepository struct {
	col *mongo.Collection
}

func NewVisitRepository(db *mongo.Database) *VisitRepository {
	return &VisitRepository{col: db.Collection(collectionVisits)}
}

type mongoVisit struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	RealEstate primitive.ObjectID `bson:"real_estate"`
	Date       time.Time          `bson:"date"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (m mongoVisit) toDomain() domain.Visit {
	return domain.Visit{
		ID:         m.ID.Hex(),
		RealEstate: m.RealEstate.Hex(),
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	ref, err := primitive.ObjectIDFromHex(v.RealEstate)
	if err != nil {
		return nil, domain.ErrUnknownRealEstate
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoVisit{
		RealEstate: ref,
		Date:       v.Date,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert visit: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *VisitRepository) List(ctx context.Context, limit, offset int) ([]domain.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetLimit(int64(limit)).SetSkip(int64(offset))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Visit{}
	for cur.Next(ctx) {
		var m mongoVisit
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode visit: %w", err)
		}
		out = append(out, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate visits: %w", err)
	}
	return out, nil
}

func (r *VisitRepository) Update(ctx context.Context, id string, patch ports.VisitPatch) (*domain.Visit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVisitNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.RealEstate != nil {
		ref, err := primitive.ObjectIDFromHex(*patch.RealEstate)
		if err != nil {
			return nil, domain.ErrUnknownRealEstate
		}
		set["real_estate"] = ref
	}
	if patch.Date != nil {
		set["date"] = patch.Date.UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoVisit
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, fmt.Errorf("update visit: %w", err)
	}
	v := m.toDomain()
	return &v, nil
}

func (r *VisitRepository) Delete(ctx context.Context, id string) (*domain.Visit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVisitNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoVisit
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, fmt.Errorf("delete visit: %w", err)
	}
	v := m.toDomain()
	return &v, nil
}
