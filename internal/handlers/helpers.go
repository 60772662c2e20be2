package handlers

import (
	"net/http"
	"strconv"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/labstack/echo/v4"
)

// httpStatus maps the error taxonomy to HTTP statuses
func httpStatus(code apperr.ErrorCode) int {
	switch code {
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeForbidden:
		return http.StatusForbidden
	case apperr.CodeBadRequest:
		return http.StatusBadRequest
	case apperr.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse turns a service error into the wire error shape: a stable
// machine code plus a human message
func errorResponse(c echo.Context, err error) error {
	code := apperr.Code(err)
	return c.JSON(httpStatus(code), echo.Map{
		"code":    string(code),
		"message": apperr.Message(err),
	})
}

// pathID parses a numeric path parameter
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// pageParams parses limit/offset query parameters; bounds are enforced
// downstream by the feed query normalizer
func pageParams(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
