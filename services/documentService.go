package services

import (
	"context"
	"strings"

	"github.com/unicsmcr/healthcare_api/entities"
)

//go:generate mockgen -destination ../mocks/services/documentService.go -package mock_services github.com/unicsmcr/healthcare_api/services DocumentService

// DocumentQuery narrows down the documents returned by DocumentService.GetDocuments
type DocumentQuery struct {
	// Filter holds fields the documents must be equal to
	Filter map[string]string
	Limit  int64
	Skip   int64
}

// IsFilterField reports whether field can be used in DocumentQuery.Filter.
// Fields naming query operators, at any level of a dotted path, are not allowed
func IsFilterField(field string) bool {
	if field == "" {
		return false
	}
	for _, part := range strings.Split(field, ".") {
		if strings.HasPrefix(part, "$") {
			return false
		}
	}
	return true
}

// DocumentService is the service for interactions with a remote collection of documents
type DocumentService interface {
	GetDocuments(ctx context.Context, query DocumentQuery) ([]entities.Document, error)
	GetDocumentWithID(ctx context.Context, id string) (entities.Document, error)

	CreateDocument(ctx context.Context, fields entities.Document) (entities.Document, error)
	UpdateDocumentWithID(ctx context.Context, id string, fields entities.Document) (entities.Document, error)

	DeleteDocumentWithID(ctx context.Context, id string) error
}
