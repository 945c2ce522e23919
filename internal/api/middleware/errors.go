package middleware

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details" description:"Additional error details"`
}

func HandleError(resp *restful.Response, err error, code int) {
	errorResponse := ErrorResponse{
		Error: http.StatusText(code),
		Code:  code,
	}
	if err != nil {
		errorResponse.Details = err.Error()
	}

	if writeErr := resp.WriteHeaderAndEntity(code, errorResponse); writeErr != nil {
		log.Error().Err(writeErr).Int("code", code).Msg("Failed to write error response")
	}
}
