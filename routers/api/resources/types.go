package resources

import (
	"github.com/unicsmcr/healthcare_api/entities"
)

type getDocumentsReq struct {
	Limit int64 `form:"limit" binding:"omitempty,min=0"`
	Skip  int64 `form:"skip" binding:"omitempty,min=0"`
}

type getDocumentsRes struct {
	Documents []entities.Document `json:"documents"`
}

type getDocumentRes struct {
	Document entities.Document `json:"document"`
}

type createDocumentRes struct {
	Document entities.Document `json:"document"`
}

type updateDocumentRes struct {
	Document entities.Document `json:"document"`
}
