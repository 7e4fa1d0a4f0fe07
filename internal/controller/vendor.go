package controller

import (
	"net/http"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type vendorRoutesHandler struct {
	vendorService service.Vendor
	validate      *validator.Validate
}

func newVendorRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *vendorRoutesHandler {
	h := &vendorRoutesHandler{vendorService: services.Vendor, validate: v}

	outer.POST("/vendors/new", h.PostVendor)
	outer.GET("/vendors", h.GetVendors)

	return h
}

type postVendorInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	ContactName string `json:"contactName" validate:"max=100"`
}

// /vendors/new
func (h *vendorRoutesHandler) PostVendor(c echo.Context) error {
	var input postVendorInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateVendorInput{
		Name: input.Name, Email: input.Email, ContactName: input.ContactName,
	}

	vendor, err := h.vendorService.CreateVendor(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, vendor); e != nil {
		return e
	}

	return nil
}

type getVendorsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=100"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

func newGetVendorsInput() getVendorsInput {
	return getVendorsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /vendors
func (h *vendorRoutesHandler) GetVendors(c echo.Context) error {
	var input = newGetVendorsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	vendors, err := h.vendorService.GetVendors(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, vendors); e != nil {
		return e
	}

	return nil
}
