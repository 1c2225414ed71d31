package testtools

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// GenerateCtxWithJSONAndParams builds a gin test context with the given JSON body and route params.
func GenerateCtxWithJSONAndParams(t *testing.T, data map[string]interface{}, params []gin.Param) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Params = params
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", nil)

	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(jsonbytes))

	return ctx
}

// GenerateCtxWithRawBody builds a gin test context carrying a raw request body
// and optional headers, for handlers that must read the unparsed payload.
func GenerateCtxWithRawBody(t *testing.T, body []byte, headers map[string]string) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", nil)
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	for k, v := range headers {
		ctx.Request.Header.Set(k, v)
	}

	return ctx
}
