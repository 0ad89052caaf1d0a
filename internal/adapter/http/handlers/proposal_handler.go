package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/dto/request"
	response "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/dto/response"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for maintenance-contract proposals.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.CreateProposal(c.Request.Context(), payload.ResolveClientID(), payload.ResolveSelection(), payload.ResolveTerms())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.UpdateProposal(c.Request.Context(), c.Param("id"), payload.ResolveSelection(), payload.ResolveTerms())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) PreviewProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	items, totals, err := h.usecase.PreviewProposal(c.Request.Context(), payload.ResolveSelection(), payload.ResolveTerms())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposalPreview(items, totals))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	proposals, err := h.usecase.ListByClientID(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

func (h *ProposalHandler) ApproveProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.ApproveByID)
}

func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.RejectByID)
}

func (h *ProposalHandler) CancelProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.CancelByID)
}

func (h *ProposalHandler) patchProposalStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proposal, error),
) {
	proposal, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrEmptySelection), errors.Is(err, usecase.ErrInvalidVisitCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCatalogItem):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATALOG_ITEM", "Unknown catalog item in selection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
