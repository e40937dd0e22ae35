package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DocumentField string

const (
	DocumentID        DocumentField = "_id"
	DocumentCreatedAt DocumentField = "createdAt"
	DocumentUpdatedAt DocumentField = "updatedAt"
)

var reservedFields = []DocumentField{DocumentID, DocumentCreatedAt, DocumentUpdatedAt}

// Document is a schema-free record of one of the site's collections
// (hospitals, doctors, treatments, bookings, blogs...)
type Document map[string]interface{}

// ID returns the document's ObjectID or primitive.NilObjectID when it has none
func (d Document) ID() primitive.ObjectID {
	id, ok := d[string(DocumentID)].(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID
	}
	return id
}

// WithoutReservedFields returns a copy of the document without the fields managed by the API
func (d Document) WithoutReservedFields() Document {
	fields := make(Document, len(d))
	for key, value := range d {
		fields[key] = value
	}
	for _, field := range reservedFields {
		delete(fields, string(field))
	}
	return fields
}

// NormalizeDocument converts the nested BSON containers the driver decodes
// into plain maps and slices, so documents marshal to natural JSON
func NormalizeDocument(doc map[string]interface{}) Document {
	normalized := make(Document, len(doc))
	for key, value := range doc {
		normalized[key] = normalizeValue(value)
	}
	return normalized
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.D:
		return NormalizeDocument(v.Map())
	case primitive.M:
		return NormalizeDocument(v)
	case map[string]interface{}:
		return NormalizeDocument(v)
	case primitive.A:
		return normalizeSlice(v)
	case []interface{}:
		return normalizeSlice(v)
	default:
		return v
	}
}

func normalizeSlice(values []interface{}) []interface{} {
	normalized := make([]interface{}, len(values))
	for i, value := range values {
		normalized[i] = normalizeValue(value)
	}
	return normalized
}
