// internal/app/store/admincreds/store.go
package admincreds

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for the admin credential
// singleton.
const CollectionName = "admin_credentials"

// Store provides access to the admin_credentials singleton. Only a bcrypt
// hash of the password is stored; the clear value exists once, in the
// activation response shown to the business owner.
type Store struct {
	c *mongo.Collection
}

// New creates an admin credentials store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Credential is the stored admin login.
type Credential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Singleton    bool               `bson:"singleton"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// Get returns the stored credential, or nil if the site was never activated.
func (s *Store) Get(ctx context.Context) (*Credential, error) {
	var cred Credential
	err := s.c.FindOne(ctx, bson.M{"singleton": true}).Decode(&cred)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// Replace overwrites the credential singleton with a new email and password
// hash.
func (s *Store) Replace(ctx context.Context, email, passwordHash string) error {
	update := bson.M{
		"$set": bson.M{
			"singleton":     true,
			"email":         email,
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"singleton": true}, update, opts)
	return err
}
