package db

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// connectAttempts bounds the startup ping retry loop. Steady-state
// reconnects are handled by the driver's connection pool.
const connectAttempts = 5

// Connect opens a MongoDB client and verifies the connection with a bounded
// ping retry before handing it back.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, err
	}

	var pingErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if pingErr == nil {
			return client, nil
		}
		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   pingErr,
		}).Warn("MongoDB ping failed, retrying")
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	_ = client.Disconnect(ctx)
	return nil, pingErr
}
