package controllers

import (
	"errors"
	"net/http"

	"hotel-website/apiclient"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

// upstreamStatus maps an API client error to the HTTP status and visitor
// message this service responds with.
func upstreamStatus(err error) (int, string) {
	var (
		netErr *apiclient.NetworkError
		srvErr *apiclient.ServerError
		apiErr *apiclient.APIError
		malErr *apiclient.MalformedResponseError
	)
	switch {
	case errors.As(err, &netErr):
		return http.StatusBadGateway, "We couldn't reach the reservation service. Please check your connection and try again."
	case errors.As(err, &srvErr):
		return http.StatusBadGateway, "The reservation service had a problem. Please try again later."
	case errors.As(err, &malErr):
		return http.StatusBadGateway, "The reservation service returned an unexpected response. Please try again later."
	case errors.As(err, &apiErr):
		return apiErr.Status, "The reservation service rejected the request. Please review your details and try again."
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

func respondUpstreamError(c *gin.Context, err error) {
	status, msg := upstreamStatus(err)
	utils.JSONError(c, status, msg)
}
