package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DocumentRepository is the repository for the documents of a single collection
type DocumentRepository struct {
	*mongo.Collection
}

// NewDocumentRepository creates a new DocumentRepository for the given collection
func NewDocumentRepository(db *mongo.Database, collection string) *DocumentRepository {
	return &DocumentRepository{
		Collection: db.Collection(collection),
	}
}
