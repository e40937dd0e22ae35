package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/healthcare_api/database"
	"github.com/unicsmcr/healthcare_api/entities"
	"github.com/unicsmcr/healthcare_api/repositories"
	"github.com/unicsmcr/healthcare_api/services"
	"github.com/unicsmcr/healthcare_api/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoDocumentService struct {
	logger       *zap.Logger
	connector    database.Connector
	timeProvider utils.TimeProvider
	collection   string
}

// NewMongoDocumentService creates a new DocumentService for the given collection that uses MongoDB as the storage technology.
// The collection is resolved on every call, so the service can be created before the database is connected
func NewMongoDocumentService(logger *zap.Logger, connector database.Connector, timeProvider utils.TimeProvider, collection string) services.DocumentService {
	return &mongoDocumentService{
		logger:       logger,
		connector:    connector,
		timeProvider: timeProvider,
		collection:   collection,
	}
}

func (s *mongoDocumentService) repository() (*repositories.DocumentRepository, error) {
	db, err := s.connector.Database()
	if err != nil {
		return nil, errors.Wrapf(err, "could not access collection %s", s.collection)
	}

	return repositories.NewDocumentRepository(db, s.collection), nil
}

func (s *mongoDocumentService) GetDocuments(ctx context.Context, query services.DocumentQuery) ([]entities.Document, error) {
	filter, err := makeFilter(query.Filter)
	if err != nil {
		return nil, err
	}

	repo, err := s.repository()
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: string(entities.DocumentID), Value: -1}})
	if query.Limit > 0 {
		findOptions.SetLimit(query.Limit)
	}
	if query.Skip > 0 {
		findOptions.SetSkip(query.Skip)
	}

	cur, err := repo.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "could not query for documents")
	}
	defer cur.Close(ctx)

	docs, err := decodeDocumentsResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return docs, nil
}

func (s *mongoDocumentService) GetDocumentWithID(ctx context.Context, id string) (entities.Document, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	repo, err := s.repository()
	if err != nil {
		return nil, err
	}

	res := repo.FindOne(ctx, bson.M{
		string(entities.DocumentID): mongoID,
	})

	doc, err := decodeDocumentResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for document with ID")
	}

	return doc, nil
}

func (s *mongoDocumentService) CreateDocument(ctx context.Context, fields entities.Document) (entities.Document, error) {
	repo, err := s.repository()
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now().UTC()
	doc := fields.WithoutReservedFields()
	doc[string(entities.DocumentID)] = primitive.NewObjectID()
	doc[string(entities.DocumentCreatedAt)] = now
	doc[string(entities.DocumentUpdatedAt)] = now

	_, err = repo.InsertOne(ctx, doc)
	if err != nil {
		return nil, errors.Wrap(err, "could not insert document")
	}

	return doc, nil
}

func (s *mongoDocumentService) UpdateDocumentWithID(ctx context.Context, id string, fields entities.Document) (entities.Document, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	repo, err := s.repository()
	if err != nil {
		return nil, err
	}

	update := fields.WithoutReservedFields()
	update[string(entities.DocumentUpdatedAt)] = s.timeProvider.Now().UTC()

	res := repo.FindOneAndUpdate(ctx, bson.M{
		string(entities.DocumentID): mongoID,
	}, bson.M{
		"$set": update,
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	doc, err := decodeDocumentResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not update document with ID")
	}

	return doc, nil
}

func (s *mongoDocumentService) DeleteDocumentWithID(ctx context.Context, id string) error {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return services.ErrInvalidID
	}

	repo, err := s.repository()
	if err != nil {
		return err
	}

	res, err := repo.DeleteOne(ctx, bson.M{
		string(entities.DocumentID): mongoID,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete document with ID")
	} else if res.DeletedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func makeFilter(fields map[string]string) (bson.M, error) {
	filter := bson.M{}
	for key, value := range fields {
		if !services.IsFilterField(key) {
			return nil, errors.Wrapf(services.ErrInvalidFilter, "field %s", key)
		}
		if key == string(entities.DocumentID) {
			mongoID, err := primitive.ObjectIDFromHex(value)
			if err != nil {
				return nil, services.ErrInvalidID
			}
			filter[key] = mongoID
			continue
		}
		filter[key] = value
	}
	return filter, nil
}

func decodeDocumentResult(res *mongo.SingleResult) (entities.Document, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var doc bson.M
	err = res.Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode document")
	}

	return entities.NormalizeDocument(doc), nil
}

func decodeDocumentsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Document, error) {
	docs := []entities.Document{}
	for cur.Next(ctx) {
		var doc bson.M
		err := cur.Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode document")
		}
		docs = append(docs, entities.NormalizeDocument(doc))
	}

	return docs, cur.Err()
}
