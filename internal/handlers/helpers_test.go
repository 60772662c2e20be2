package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code apperr.ErrorCode
		want int
	}{
		{apperr.CodeNotFound, http.StatusNotFound},
		{apperr.CodeForbidden, http.StatusForbidden},
		{apperr.CodeBadRequest, http.StatusBadRequest},
		{apperr.CodeConflict, http.StatusConflict},
		{apperr.CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, httpStatus(tt.code), string(tt.code))
	}
}

func TestErrorResponseShape(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := errorResponse(c, apperr.New(apperr.CodeConflict, "already following this user"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CONFLICT", body["code"])
	assert.Equal(t, "already following this user", body["message"])
}

func TestPathID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("17")

	id, err := pathID(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, uint(17), id)

	c.SetParamValues("not-a-number")
	_, err = pathID(c, "id")
	var he *echo.HTTPError
	if assert.ErrorAs(t, err, &he) {
		assert.Equal(t, http.StatusBadRequest, he.Code)
	}
}
