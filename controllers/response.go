package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/middlewares"
	"github.com/Kariqs/amexan-eats-api/services"
	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "Internal server error"
	msgUnauthorized        = "User not found in context"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// sendServiceError answers with the status matching err. Internal failures
// are logged and reported with a generic message.
func sendServiceError(ctx *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		zerolog.Ctx(ctx.Request.Context()).Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
		sendErrorResponse(ctx, status, msgInternalServerError)
		return
	}
	sendErrorResponse(ctx, status, err.Error())
}

func currentIdentity(ctx *gin.Context) (auth.Identity, bool) {
	identity, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
	}
	return identity, ok
}

func paramID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func listParams(ctx *gin.Context) services.ListParams {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	keyword := ctx.Query("search")
	if keyword == "" {
		keyword = ctx.Query("keyword")
	}
	return services.ListParams{
		Keyword: keyword,
		Sort:    ctx.Query("sort"),
		Order:   ctx.Query("order"),
		Page:    page,
		Limit:   limit,
	}
}

func pageMetadata[T any](page *services.Page[T]) gin.H {
	return gin.H{
		"total": page.Total,
		"page":  page.Page,
		"limit": page.Limit,
	}
}

// formImage opens the optional "image" file of a multipart request. The
// returned closer is never nil.
func formImage(ctx *gin.Context) (*services.ImageUpload, io.Closer, error) {
	noop := io.NopCloser(nil)
	if ctx.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, nil
	}
	header, err := ctx.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, noop, err
	}
	return &services.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType(header),
		Body:        file,
	}, file, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
