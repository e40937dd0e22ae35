package resources

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/healthcare_api/database"
	"github.com/unicsmcr/healthcare_api/entities"
	mock_services "github.com/unicsmcr/healthcare_api/mocks/services"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"github.com/unicsmcr/healthcare_api/routers/middleware"
	"github.com/unicsmcr/healthcare_api/services"
	"github.com/unicsmcr/healthcare_api/testutils"
	"go.uber.org/zap"
)

const testDocumentID = "5f1d6c1e8b2c4a0012a3b4c5"

type resourcesTestSetup struct {
	ctrl           *gomock.Controller
	router         Router
	mockDocService *mock_services.MockDocumentService
	testCtx        *gin.Context
	w              *httptest.ResponseRecorder
	testDocument   entities.Document
}

func setupTest(t *testing.T) *resourcesTestSetup {
	ctrl := gomock.NewController(t)
	mockDocService := mock_services.NewMockDocumentService(ctrl)

	w := httptest.NewRecorder()
	testCtx, _ := gin.CreateTestContext(w)

	return &resourcesTestSetup{
		ctrl:           ctrl,
		router:         NewRouter(zap.NewNop(), mockDocService),
		mockDocService: mockDocService,
		testCtx:        testCtx,
		w:              w,
		testDocument: entities.Document{
			"_id":  testDocumentID,
			"name": "St Mary's",
		},
	}
}

func Test_RegisterRoutes__should_register_document_routes(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	engine := gin.New()
	setup.router.RegisterRoutes(engine.Group("/api/hospitals"))

	registered := map[string]bool{}
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"GET /api/hospitals",
		"GET /api/hospitals/:id",
		"POST /api/hospitals",
		"PUT /api/hospitals/:id",
		"PATCH /api/hospitals/:id",
		"DELETE /api/hospitals/:id",
	} {
		assert.True(t, registered[route], route)
	}
}

func Test_GetDocuments(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prep         func(setup *resourcesTestSetup)
		wantResCode  int
		wantDocCount int
	}{
		{
			name:        "should return 400 when limit is not a number",
			query:       "?limit=ten",
			wantResCode: http.StatusBadRequest,
		},
		{
			name:        "should return 400 when skip is negative",
			query:       "?skip=-1",
			wantResCode: http.StatusBadRequest,
		},
		{
			name:        "should return 400 when filter field is a query operator",
			query:       "?%24where=sleep(5000)%7C%7Ctrue",
			wantResCode: http.StatusBadRequest,
		},
		{
			name:        "should return 400 when nested filter field is a query operator",
			query:       "?address.%24ne=Leeds",
			wantResCode: http.StatusBadRequest,
		},
		{
			name:  "should return 400 when service rejects filter",
			query: "?city=Leeds",
			prep: func(setup *resourcesTestSetup) {
				setup.mockDocService.EXPECT().GetDocuments(setup.testCtx, gomock.Any()).
					Return(nil, errors.Wrap(services.ErrInvalidFilter, "field city")).Times(1)
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name:  "should return 503 when database is not connected",
			query: "",
			prep: func(setup *resourcesTestSetup) {
				setup.mockDocService.EXPECT().GetDocuments(setup.testCtx, gomock.Any()).
					Return(nil, errors.Wrap(database.ErrNotConnected, "could not get collection")).Times(1)
			},
			wantResCode: http.StatusServiceUnavailable,
		},
		{
			name:  "should pass filter, limit and skip to service",
			query: "?limit=5&skip=10&city=Manchester",
			prep: func(setup *resourcesTestSetup) {
				setup.mockDocService.EXPECT().GetDocuments(setup.testCtx, services.DocumentQuery{
					Filter: map[string]string{"city": "Manchester"},
					Limit:  5,
					Skip:   10,
				}).Return([]entities.Document{setup.testDocument}, nil).Times(1)
			},
			wantResCode:  http.StatusOK,
			wantDocCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			defer setup.ctrl.Finish()
			if tt.prep != nil {
				tt.prep(setup)
			}
			setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/test"+tt.query, nil)

			setup.router.GetDocuments(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)
			if tt.wantResCode == http.StatusOK {
				var res getDocumentsRes
				err := testutils.UnmarshallResponse(setup.w.Body, &res)
				assert.NoError(t, err)
				assert.Len(t, res.Documents, tt.wantDocCount)
			}
		})
	}
}

func Test_GetDocument(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantResCode int
	}{
		{
			name:        "should return 400 when id is invalid",
			serviceErr:  errors.Wrap(services.ErrInvalidID, "could not parse id"),
			wantResCode: http.StatusBadRequest,
		},
		{
			name:        "should return 404 when document does not exist",
			serviceErr:  services.ErrNotFound,
			wantResCode: http.StatusNotFound,
		},
		{
			name:        "should return 200 with document",
			wantResCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			defer setup.ctrl.Finish()
			testutils.SetPathParams(setup.testCtx, map[string]string{"id": testDocumentID})

			var doc entities.Document
			if tt.serviceErr == nil {
				doc = setup.testDocument
			}
			setup.mockDocService.EXPECT().GetDocumentWithID(setup.testCtx, testDocumentID).
				Return(doc, tt.serviceErr).Times(1)

			setup.router.GetDocument(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)
			if tt.wantResCode == http.StatusOK {
				var res getDocumentRes
				err := testutils.UnmarshallResponse(setup.w.Body, &res)
				assert.NoError(t, err)
				assert.Equal(t, "St Mary's", res.Document["name"])
			}
		})
	}
}

func Test_GetDocument__should_hand_unexpected_errors_to_error_handler(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	serviceErr := errors.New("service err")
	setup.mockDocService.EXPECT().GetDocumentWithID(setup.testCtx, "").Return(nil, serviceErr).Times(1)

	setup.router.GetDocument(setup.testCtx)

	assert.False(t, setup.testCtx.Writer.Written())
	assert.Len(t, setup.testCtx.Errors, 1)
	assert.Equal(t, serviceErr, setup.testCtx.Errors.Last().Err)
}

func Test_CreateDocument(t *testing.T) {
	tests := []struct {
		name        string
		prep        func(setup *resourcesTestSetup)
		wantResCode int
	}{
		{
			name: "should return 400 when body is malformed",
			prep: func(setup *resourcesTestSetup) {
				setup.testCtx.Request = testutils.NewJSONRequest(http.MethodPost, "/api/hospitals", "{name")
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name: "should return 413 when body exceeds the limit",
			prep: func(setup *resourcesTestSetup) {
				setup.testCtx.Request = testutils.NewJSONRequest(http.MethodPost, "/api/hospitals", `{"name":"`+strings.Repeat("a", 64)+`"}`)
				setup.testCtx.Request.ContentLength = -1
				middleware.LimitBody(16)(setup.testCtx)
			},
			wantResCode: http.StatusRequestEntityTooLarge,
		},
		{
			name: "should create document from JSON body",
			prep: func(setup *resourcesTestSetup) {
				setup.testCtx.Request = testutils.NewJSONRequest(http.MethodPost, "/api/hospitals", `{"name":"St Mary's"}`)
				setup.mockDocService.EXPECT().CreateDocument(setup.testCtx, entities.Document{"name": "St Mary's"}).
					Return(setup.testDocument, nil).Times(1)
			},
			wantResCode: http.StatusCreated,
		},
		{
			name: "should create document from form body",
			prep: func(setup *resourcesTestSetup) {
				setup.testCtx.Request = testutils.NewFormRequest(http.MethodPost, "/api/hospitals", map[string]string{"name": "St Mary's"})
				setup.mockDocService.EXPECT().CreateDocument(setup.testCtx, entities.Document{"name": "St Mary's"}).
					Return(setup.testDocument, nil).Times(1)
			},
			wantResCode: http.StatusCreated,
		},
		{
			name: "should return 503 when database is not connected",
			prep: func(setup *resourcesTestSetup) {
				setup.testCtx.Request = testutils.NewJSONRequest(http.MethodPost, "/api/hospitals", `{"name":"St Mary's"}`)
				setup.mockDocService.EXPECT().CreateDocument(setup.testCtx, gomock.Any()).
					Return(nil, database.ErrNotConnected).Times(1)
			},
			wantResCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			defer setup.ctrl.Finish()
			tt.prep(setup)

			setup.router.CreateDocument(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)
		})
	}
}

func Test_UpdateDocument(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantResCode int
	}{
		{
			name:        "should return 404 when document does not exist",
			serviceErr:  services.ErrNotFound,
			wantResCode: http.StatusNotFound,
		},
		{
			name:        "should return 200 with updated document",
			wantResCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			defer setup.ctrl.Finish()
			setup.testCtx.Request = testutils.NewJSONRequest(http.MethodPut, "/api/hospitals", `{"city":"Leeds"}`)
			testutils.SetPathParams(setup.testCtx, map[string]string{"id": testDocumentID})

			var doc entities.Document
			if tt.serviceErr == nil {
				doc = entities.Document{"_id": testDocumentID, "city": "Leeds"}
			}
			setup.mockDocService.EXPECT().UpdateDocumentWithID(setup.testCtx, testDocumentID, entities.Document{"city": "Leeds"}).
				Return(doc, tt.serviceErr).Times(1)

			setup.router.UpdateDocument(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)
			if tt.wantResCode == http.StatusOK {
				var res updateDocumentRes
				err := testutils.UnmarshallResponse(setup.w.Body, &res)
				assert.NoError(t, err)
				assert.Equal(t, "Leeds", res.Document["city"])
			}
		})
	}
}

func Test_DeleteDocument(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantResCode int
	}{
		{
			name:        "should return 400 when id is invalid",
			serviceErr:  services.ErrInvalidID,
			wantResCode: http.StatusBadRequest,
		},
		{
			name:        "should return 404 when document does not exist",
			serviceErr:  services.ErrNotFound,
			wantResCode: http.StatusNotFound,
		},
		{
			name:        "should return 200 when document was deleted",
			wantResCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			defer setup.ctrl.Finish()
			testutils.SetPathParams(setup.testCtx, map[string]string{"id": testDocumentID})
			setup.mockDocService.EXPECT().DeleteDocumentWithID(setup.testCtx, testDocumentID).
				Return(tt.serviceErr).Times(1)

			setup.router.DeleteDocument(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)
			var res models.Response
			err := testutils.UnmarshallResponse(setup.w.Body, &res)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantResCode, res.Status)
		})
	}
}
