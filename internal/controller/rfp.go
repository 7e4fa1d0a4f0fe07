package controller

import (
	"net/http"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type rfpRoutesHandler struct {
	rfpService service.Rfp
	validate   *validator.Validate
}

func newRfpRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *rfpRoutesHandler {
	h := &rfpRoutesHandler{rfpService: services.Rfp, validate: v}

	outer.POST("/rfps/new", h.PostRfp)
	outer.GET("/rfps", h.GetRfps)
	outer.GET("/rfps/:rfpId", h.GetRfp)
	outer.POST("/rfps/:rfpId/send", h.SendRfp)
	outer.GET("/rfps/:rfpId/outbox", h.GetRfpOutbox)

	return h
}

type postRfpInput struct {
	Text string `json:"text" validate:"required,max=10000"`
}

// /rfps/new
func (h *rfpRoutesHandler) PostRfp(c echo.Context) error {
	var input postRfpInput
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

	rfp, err := h.rfpService.CreateRfp(c.Request().Context(), input.Text)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, rfp); e != nil {
		return e
	}

	return nil
}

type getRfpsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=100"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

func newGetRfpsInput() getRfpsInput {
	return getRfpsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /rfps
func (h *rfpRoutesHandler) GetRfps(c echo.Context) error {
	var input = newGetRfpsInput()
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
	rfps, err := h.rfpService.GetRfps(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, rfps); e != nil {
		return e
	}

	return nil
}

type getRfpInput struct {
	RfpId string `param:"rfpId" validate:"required,max=100"`
}

// /rfps/:rfpId
func (h *rfpRoutesHandler) GetRfp(c echo.Context) error {
	input := getRfpInput{RfpId: c.Param("rfpId")}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	rfp, err := h.rfpService.GetRfpById(c.Request().Context(), input.RfpId)
	if err == nil {
		if e := c.JSON(http.StatusOK, rfp); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrRfpNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no RFP with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type sendRfpInput struct {
	RfpId     string   `param:"rfpId" validate:"required,max=100"`
	VendorIds []string `json:"vendorIds" validate:"required,min=1,dive,required"`
}

type sendRfpOutput struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// /rfps/:rfpId/send
func (h *rfpRoutesHandler) SendRfp(c echo.Context) error {
	var input sendRfpInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.RfpId = c.Param("rfpId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	count, err := h.rfpService.SendRfp(c.Request().Context(), input.RfpId, input.VendorIds)
	if err == nil {
		if e := c.JSON(http.StatusOK, sendRfpOutput{Status: "sent", Count: count}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrRfpNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no RFP with given id"}); e != nil {
			return e
		}
	case service.ErrNoVendorsMatched:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"None of the given vendor ids exist"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /rfps/:rfpId/outbox
func (h *rfpRoutesHandler) GetRfpOutbox(c echo.Context) error {
	input := getRfpInput{RfpId: c.Param("rfpId")}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	messages, err := h.rfpService.GetOutboxByRfpId(c.Request().Context(), input.RfpId)
	if err == nil {
		if e := c.JSON(http.StatusOK, messages); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrRfpNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no RFP with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
