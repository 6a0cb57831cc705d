package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/authcore/account-service/internal/core/domain"
)

const tokenCollection = "password_reset_tokens"

// MongoResetTokenRepository is the password-reset token ledger. The token id
// itself is the document _id, which makes Consume a single FindOneAndDelete:
// of two racing completions for the same id, exactly one gets the document.
//
// Expired tokens are not swept; they sit in the collection until the next
// lookup notices the age and deletes them.
type MongoResetTokenRepository struct {
	coll *mongo.Collection
}

func NewResetTokenRepository(db *mongo.Database) *MongoResetTokenRepository {
	return &MongoResetTokenRepository{coll: db.Collection(tokenCollection)}
}

type mongoResetToken struct {
	ID        string `bson:"_id"`
	UserID    string `bson:"user_id"`
	Email     string `bson:"email"`
	CreatedAt int64  `bson:"created_at"`
}

func (mt *mongoResetToken) toDomain() *domain.PasswordResetToken {
	return &domain.PasswordResetToken{
		ID:        mt.ID,
		UserID:    mt.UserID,
		Email:     mt.Email,
		CreatedAt: unixToTime(mt.CreatedAt),
	}
}

func (r *MongoResetTokenRepository) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	doc := mongoResetToken{
		ID:        token.ID,
		UserID:    token.UserID,
		Email:     token.Email,
		CreatedAt: token.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert reset token: %w", err)
	}
	return nil
}

func (r *MongoResetTokenRepository) FindByID(ctx context.Context, id string) (*domain.PasswordResetToken, error) {
	var mt mongoResetToken
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find reset token: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *MongoResetTokenRepository) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count reset tokens: %w", err)
	}
	return n > 0, nil
}

func (r *MongoResetTokenRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete reset token: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// Consume atomically fetches and removes the token.
func (r *MongoResetTokenRepository) Consume(ctx context.Context, id string) (*domain.PasswordResetToken, error) {
	var mt mongoResetToken
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("consume reset token: %w", err)
	}
	return mt.toDomain(), nil
}
