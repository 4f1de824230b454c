// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sitesmith/sitesmith/internal/app/system/mailer"
	"github.com/sitesmith/sitesmith/internal/app/system/producer"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: EnsureSchema, Startup, BuildHandler, and Shutdown. The Shutdown
// hook closes these connections when the application terminates.
type DBDeps struct {
	// MongoDB client and database
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Producer turns business descriptions into content bundles; either
	// the generative adapter or the template producer, per configuration.
	Producer producer.Producer

	// Mailer for contact-form emails
	Mailer *mailer.Mailer
}
