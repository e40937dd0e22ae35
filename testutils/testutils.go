package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// UnmarshallResponse decodes the JSON response written to res into out
func UnmarshallResponse(res *bytes.Buffer, out interface{}) error {
	return json.NewDecoder(res).Decode(out)
}

// NewJSONRequest builds a request to target carrying body as JSON
func NewJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewFormRequest builds a request to target carrying params as an url-encoded form
func NewFormRequest(method, target string, params map[string]string) *http.Request {
	data := url.Values{}
	for key, val := range params {
		data.Set(key, val)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// NewFileRequest builds a multipart request to target uploading content as filename in field
func NewFileRequest(t testing.TB, method, target, field, filename, content string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// SetPathParams replaces the path params of ctx, e.g. the :id of /api/hospitals/:id
func SetPathParams(ctx *gin.Context, params map[string]string) {
	ctx.Params = ctx.Params[:0]
	for key, val := range params {
		ctx.Params = append(ctx.Params, gin.Param{Key: key, Value: val})
	}
}

// RouterGroupMatcher matches the router group a resource router gets mounted on
type RouterGroupMatcher struct {
	// Path is the mount path, e.g. /api/hospitals
	Path string
}

// Matches implements the gomock.Matcher interface
func (r RouterGroupMatcher) Matches(x interface{}) bool {
	group, ok := x.(*gin.RouterGroup)
	return ok && group != nil && group.BasePath() == r.Path
}

func (r RouterGroupMatcher) String() string {
	return fmt.Sprintf("router group mounted on %s", r.Path)
}
