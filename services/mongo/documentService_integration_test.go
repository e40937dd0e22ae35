// +build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/healthcare_api/entities"
	mock_database "github.com/unicsmcr/healthcare_api/mocks/database"
	mock_utils "github.com/unicsmcr/healthcare_api/mocks/utils"
	"github.com/unicsmcr/healthcare_api/services"
	"github.com/unicsmcr/healthcare_api/testutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const testCollection = "hospitals"

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type documentTestSetup struct {
	service    services.DocumentService
	collection *mongo.Collection
	cleanup    func()
}

func setupDocumentTest(t *testing.T) *documentTestSetup {
	db := testutils.ConnectToIntegrationTestDB(t)

	ctrl := gomock.NewController(t)
	mockConnector := mock_database.NewMockConnector(ctrl)
	mockConnector.EXPECT().Database().Return(db, nil).AnyTimes()
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	mockTimeProvider.EXPECT().Now().Return(testNow).AnyTimes()

	return &documentTestSetup{
		service:    NewMongoDocumentService(zap.NewNop(), mockConnector, mockTimeProvider, testCollection),
		collection: db.Collection(testCollection),
		cleanup: func() {
			db.Collection(testCollection).Drop(context.Background())
			ctrl.Finish()
		},
	}
}

func Test_CreateDocument__should_insert_document_with_managed_fields(t *testing.T) {
	setup := setupDocumentTest(t)
	defer setup.cleanup()

	doc, err := setup.service.CreateDocument(context.Background(), entities.Document{
		"_id":  "client supplied",
		"name": "St. Mary",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, doc.ID())

	res := setup.collection.FindOne(context.Background(), bson.M{
		"_id":       doc.ID(),
		"name":      "St. Mary",
		"createdAt": testNow,
	})
	assert.NoError(t, res.Err())
}

func Test_GetDocuments__should_return_filtered_documents(t *testing.T) {
	setup := setupDocumentTest(t)
	defer setup.cleanup()

	_, err := setup.collection.InsertMany(context.Background(), []interface{}{
		bson.M{"_id": primitive.NewObjectID(), "name": "St. Mary", "city": "Manchester"},
		bson.M{"_id": primitive.NewObjectID(), "name": "Royal", "city": "London"},
	})
	assert.NoError(t, err)

	docs, err := setup.service.GetDocuments(context.Background(), services.DocumentQuery{
		Filter: map[string]string{"city": "Manchester"},
	})
	assert.NoError(t, err)

	assert.Len(t, docs, 1)
	assert.Equal(t, "St. Mary", docs[0]["name"])
}

func Test_GetDocuments__should_return_empty_slice_when_collection_is_empty(t *testing.T) {
	setup := setupDocumentTest(t)
	defer setup.cleanup()

	docs, err := setup.service.GetDocuments(context.Background(), services.DocumentQuery{})
	assert.NoError(t, err)

	assert.NotNil(t, docs)
	assert.Len(t, docs, 0)
}

func Test_GetDocumentWithID__should_return_ErrNotFound_when_document_does_not_exist(t *testing.T) {
	setup := setupDocumentTest(t)
	defer setup.cleanup()

	_, err := setup.service.GetDocumentWithID(context.Background(), primitive.NewObjectID().Hex())

	assert.Equal(t, services.ErrNotFound, err)
}

func Test_UpdateDocumentWithID__should_return_updated_document(t *testing.T) {
	setup := setupDocumentTest(t)
	defer setup.cleanup()

	id := primitive.NewObjectID()
	_, err := setup.collection.InsertOne(context.Background(), bson.M{"_id": id, "name": "St. Mary"})
	assert.NoError(t, err)

	doc, err := setup.service.UpdateDocumentWithID(context.Background(), id.Hex(), entities.Document{"name": "St. Mary's"})
	assert.NoError(t, err)

	assert.Equal(t, "St. Mary's", doc["name"])
	assert.Equal(t, id, doc.ID())
}

func Test_DeleteDocumentWithID__should_return_ErrNotFound_when_document_does_not_exist(t *testing.T) {
	setup := setupDocumentTest(t)
	defer setup.cleanup()

	err := setup.service.DeleteDocumentWithID(context.Background(), primitive.NewObjectID().Hex())

	assert.Equal(t, services.ErrNotFound, err)
}
