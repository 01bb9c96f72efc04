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

const collectionFavorites = "favorites"

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{col: db.Collection(collectionFavorites)}
}

type mongoFavorite struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	RealEstates []primitive.ObjectID `bson:"real_estates"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (m mongoFavorite) toDomain() domain.Favorite {
	refs := make([]string, len(m.RealEstates))
	for i, oid := range m.RealEstates {
		refs[i] = oid.Hex()
	}
	return domain.Favorite{
		ID:          m.ID.Hex(),
		RealEstates: refs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *FavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	refs, err := toObjectIDs(fav.RealEstates)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoFavorite{
		RealEstates: refs,
		CreatedAt:   fav.CreatedAt,
		UpdatedAt:   fav.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert favorite: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *FavoriteRepository) List(ctx context.Context, limit, offset int) ([]domain.Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetLimit(int64(limit)).SetSkip(int64(offset))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Favorite{}
	for cur.Next(ctx) {
		var m mongoFavorite
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		out = append(out, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return out, nil
}

func (r *FavoriteRepository) Update(ctx context.Context, id string, patch ports.FavoritePatch) (*domain.Favorite, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFavoriteNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.RealEstates != nil {
		refs, err := toObjectIDs(patch.RealEstates)
		if err != nil {
			return nil, err
		}
		set["real_estates"] = refs
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoFavorite
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("update favorite: %w", err)
	}
	fav := m.toDomain()
	return &fav, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id string) (*domain.Favorite, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFavoriteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoFavorite
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("delete favorite: %w", err)
	}
	fav := m.toDomain()
	return &fav, nil
}

// toObjectIDs converts listing reference hexes. The service layer has already
// resolved every reference, so a malformed id here is an input error.
func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, domain.ErrUnknownRealEstate
		}
		oids[i] = oid
	}
	return oids, nil
}
