package controller

import (
	"rfp-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api/v1")
	newDiagnosticRoutesHandler(api, services)
	newRfpRoutesHandler(api, services, validate)
	newVendorRoutesHandler(api, services, validate)
	newProposalRoutesHandler(api, services, validate)
}
