package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IntegrationTestDBURI is used when INTEGRATION_ATLAS_URI is not set
const IntegrationTestDBURI = "mongodb://localhost:8003"

// IntegrationTestDBName is the database the integration tests run against
const IntegrationTestDBName = "healthcare_test"

// GetIntegrationTestDBURI returns the connection string of the integration tests DB
func GetIntegrationTestDBURI() string {
	if uri := os.Getenv("INTEGRATION_ATLAS_URI"); len(uri) != 0 {
		return uri
	}
	return IntegrationTestDBURI
}

// ConnectToIntegrationTestDB waits for the integrations tests DB to become available
// and returns a connection to the DB
func ConnectToIntegrationTestDB(t *testing.T) *mongo.Database {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(GetIntegrationTestDBURI()))
	assert.NoError(t, err)

	var db *mongo.Database
	// Giving some time for the DB to boot up
	retryCount := 0
	for {
		db = client.Database(IntegrationTestDBName)
		err := client.Ping(context.Background(), nil)
		if err == nil {
			break
		} else if retryCount == 3 {
			fmt.Println(err)
			panic("could not connect to db")
		}
		retryCount++
		fmt.Println("could not connect to database, will retry in a bit")
		time.Sleep(5 * time.Second)
	}

	return db
}
