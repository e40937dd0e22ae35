package resources

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	"github.com/unicsmcr/healthcare_api/entities"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"github.com/unicsmcr/healthcare_api/services"
	"go.uber.org/zap"
)

const (
	limitParam = "limit"
	skipParam  = "skip"
)

// GET: /api/<collection>
// Query:    limit int, skip int, <field> string
// Response: documents []entities.Document
func (r *resourcesRouter) GetDocuments(ctx *gin.Context) {
	query, err := parseDocumentQuery(ctx)
	if err != nil {
		r.logger.Debug("could not parse query", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	docs, err := r.documentService.GetDocuments(ctx, query)
	if err != nil {
		r.handleServiceError(ctx, err, "fetch documents")
		return
	}

	ctx.JSON(http.StatusOK, getDocumentsRes{
		Documents: docs,
	})
}

// GET: /api/<collection>/:id
// Response: document entities.Document
func (r *resourcesRouter) GetDocument(ctx *gin.Context) {
	doc, err := r.documentService.GetDocumentWithID(ctx, ctx.Param("id"))
	if err != nil {
		r.handleServiceError(ctx, err, "fetch document")
		return
	}

	ctx.JSON(http.StatusOK, getDocumentRes{
		Document: doc,
	})
}

// POST: /api/<collection>
// application/json or x-www-form-urlencoded
// Request:  any fields
// Response: document entities.Document
func (r *resourcesRouter) CreateDocument(ctx *gin.Context) {
	fields, err := bindDocument(ctx)
	if err != nil {
		r.handleBindError(ctx, err)
		return
	}

	doc, err := r.documentService.CreateDocument(ctx, fields)
	if err != nil {
		r.handleServiceError(ctx, err, "create document")
		return
	}

	ctx.JSON(http.StatusCreated, createDocumentRes{
		Document: doc,
	})
}

// PUT: /api/<collection>/:id
// application/json or x-www-form-urlencoded
// Request:  fields to set
// Response: document entities.Document
func (r *resourcesRouter) UpdateDocument(ctx *gin.Context) {
	fields, err := bindDocument(ctx)
	if err != nil {
		r.handleBindError(ctx, err)
		return
	}

	doc, err := r.documentService.UpdateDocumentWithID(ctx, ctx.Param("id"), fields)
	if err != nil {
		r.handleServiceError(ctx, err, "update document")
		return
	}

	ctx.JSON(http.StatusOK, updateDocumentRes{
		Document: doc,
	})
}

// DELETE: /api/<collection>/:id
func (r *resourcesRouter) DeleteDocument(ctx *gin.Context) {
	err := r.documentService.DeleteDocumentWithID(ctx, ctx.Param("id"))
	if err != nil {
		r.handleServiceError(ctx, err, "delete document")
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Status: http.StatusOK,
	})
}

func parseDocumentQuery(ctx *gin.Context) (services.DocumentQuery, error) {
	var req getDocumentsReq
	err := ctx.ShouldBindQuery(&req)
	if err != nil {
		return services.DocumentQuery{}, errors.New("limit and skip must be non-negative integers")
	}

	query := services.DocumentQuery{
		Filter: map[string]string{},
		Limit:  req.Limit,
		Skip:   req.Skip,
	}
	for key, values := range ctx.Request.URL.Query() {
		if key == limitParam || key == skipParam || len(values) == 0 {
			continue
		}
		if !services.IsFilterField(key) {
			return query, errors.Errorf("filter field %s is not allowed", key)
		}
		query.Filter[key] = values[0]
	}

	return query, nil
}

func bindDocument(ctx *gin.Context) (entities.Document, error) {
	if ctx.ContentType() == binding.MIMEPOSTForm {
		err := ctx.Request.ParseForm()
		if err != nil {
			return nil, err
		}

		doc := entities.Document{}
		for key, values := range ctx.Request.PostForm {
			if len(values) == 1 {
				doc[key] = values[0]
			} else {
				doc[key] = values
			}
		}
		return doc, nil
	}

	doc := entities.Document{}
	err := ctx.ShouldBindJSON(&doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
