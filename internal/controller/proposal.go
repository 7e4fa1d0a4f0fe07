package controller

import (
	"net/http"
	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type proposalRoutesHandler struct {
	proposalService service.Proposal
	validate        *validator.Validate
}

func newProposalRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *proposalRoutesHandler {
	h := &proposalRoutesHandler{proposalService: services.Proposal, validate: v}

	outer.POST("/email/inbound", h.PostInboundReply)
	outer.GET("/rfps/:rfpId/proposals", h.GetRfpProposals)
	outer.POST("/rfps/:rfpId/compare", h.CompareRfpProposals)

	return h
}

type postInboundReplyInput struct {
	FromEmail string `json:"fromEmail" validate:"required,email"`
	Subject   string `json:"subject" validate:"max=500"`
	Body      string `json:"body" validate:"required,max=10000"`
}

type postInboundReplyOutput struct {
	Status     string                      `json:"status"`
	ProposalId string                      `json:"proposalId"`
	Parsed     *entity.ProposalOutputModel `json:"parsed"`
}

// /email/inbound
func (h *proposalRoutesHandler) PostInboundReply(c echo.Context) error {
	var input postInboundReplyInput
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

	model := &entity.InboundReplyInput{
		FromEmail: input.FromEmail, Subject: input.Subject, Body: input.Body,
	}

	proposal, err := h.proposalService.SubmitInboundReply(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, postInboundReplyOutput{
		Status: "accepted", ProposalId: proposal.Id, Parsed: proposal,
	}); e != nil {
		return e
	}

	return nil
}

type rfpProposalsInput struct {
	RfpId string `param:"rfpId" validate:"required,max=100"`
}

// /rfps/:rfpId/proposals
func (h *proposalRoutesHandler) GetRfpProposals(c echo.Context) error {
	input := rfpProposalsInput{RfpId: c.Param("rfpId")}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	proposals, err := h.proposalService.GetProposalsForRfp(c.Request().Context(), input.RfpId)
	if err == nil {
		if e := c.JSON(http.StatusOK, proposals); e != nil {
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

// /rfps/:rfpId/compare
func (h *proposalRoutesHandler) CompareRfpProposals(c echo.Context) error {
	input := rfpProposalsInput{RfpId: c.Param("rfpId")}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	comparison, err := h.proposalService.CompareProposals(c.Request().Context(), input.RfpId)
	if err == nil {
		if e := c.JSON(http.StatusOK, comparison); e != nil {
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
