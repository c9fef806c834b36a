package httpadapter

import (
	"context"
	"log/slog"

	"newsdesk/contexts/publishing/section-service/application"
	"newsdesk/contexts/publishing/section-service/domain/entities"
	httptransport "newsdesk/contexts/publishing/section-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListSectionsHandler godoc
// @Summary List sections
// @Description Returns the section tree in registry order.
// @Tags sections
// @Produce json
// @Success 200 {object} httptransport.ListSectionsResponse
// @Router /sections [get]
func (h Handler) ListSectionsHandler(ctx context.Context) (httptransport.ListSectionsResponse, error) {
	sections, err := h.Service.List(ctx)
	if err != nil {
		return httptransport.ListSectionsResponse{}, err
	}
	items := make([]httptransport.SectionDTO, 0, len(sections))
	for _, section := range sections {
		items = append(items, mapSection(section))
	}
	return httptransport.ListSectionsResponse{Items: items}, nil
}

// ListEditableSectionsHandler godoc
// @Summary List sections the caller may author in
// @Description Admins see the full tree; editors only their granted sections.
// @Tags sections
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Success 200 {object} httptransport.ListSectionsResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /sections/editable [get]
func (h Handler) ListEditableSectionsHandler(ctx context.Context, actorID string) (httptransport.ListSectionsResponse, error) {
	sections, err := h.Service.ListEditable(ctx, actorID)
	if err != nil {
		return httptransport.ListSectionsResponse{}, err
	}
	items := make([]httptransport.SectionDTO, 0, len(sections))
	for _, section := range sections {
		items = append(items, mapSection(section))
	}
	return httptransport.ListSectionsResponse{Items: items}, nil
}

// CreateSectionHandler godoc
// @Summary Create a section
// @Tags sections
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting admin"
// @Param request body httptransport.CreateSectionRequest true "Section"
// @Success 200 {object} httptransport.SectionDTO
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /sections [post]
func (h Handler) CreateSectionHandler(ctx context.Context, actorID string, req httptransport.CreateSectionRequest) (httptransport.SectionDTO, error) {
	section, err := h.Service.CreateSection(ctx, actorID, req.Title)
	if err != nil {
		return httptransport.SectionDTO{}, err
	}
	return mapSection(section), nil
}

// DeleteSectionHandler godoc
// @Summary Delete a section
// @Description Cascades subsections and editor grants; articles remain.
// @Tags sections
// @Param X-User-Id header string true "Acting admin"
// @Param id path string true "Section id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /sections/{id} [delete]
func (h Handler) DeleteSectionHandler(ctx context.Context, actorID string, sectionID string) error {
	return h.Service.DeleteSection(ctx, actorID, sectionID)
}

// CreateSubsectionHandler godoc
// @Summary Create a subsection
// @Tags sections
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting admin"
// @Param id path string true "Parent section id"
// @Param request body httptransport.CreateSubsectionRequest true "Subsection"
// @Success 200 {object} httptransport.SubsectionDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /sections/{id}/subsections [post]
func (h Handler) CreateSubsectionHandler(ctx context.Context, actorID string, sectionID string, req httptransport.CreateSubsectionRequest) (httptransport.SubsectionDTO, error) {
	subsection, err := h.Service.CreateSubsection(ctx, actorID, sectionID, req.Title)
	if err != nil {
		return httptransport.SubsectionDTO{}, err
	}
	return httptransport.SubsectionDTO{ID: subsection.ID, Title: subsection.Title}, nil
}

// ListGrantsHandler godoc
// @Summary List editor grants
// @Tags sections
// @Produce json
// @Param X-User-Id header string true "Acting admin"
// @Success 200 {object} httptransport.ListGrantsResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /section-editors [get]
func (h Handler) ListGrantsHandler(ctx context.Context, actorID string) (httptransport.ListGrantsResponse, error) {
	grants, err := h.Service.ListGrants(ctx, actorID)
	if err != nil {
		return httptransport.ListGrantsResponse{}, err
	}
	items := make([]httptransport.GrantDTO, 0, len(grants))
	for _, grant := range grants {
		items = append(items, httptransport.GrantDTO{UserID: grant.UserID, SectionID: grant.SectionID})
	}
	return httptransport.ListGrantsResponse{Items: items}, nil
}

// CreateGrantHandler godoc
// @Summary Grant section editor rights
// @Tags sections
// @Accept json
// @Param X-User-Id header string true "Acting admin"
// @Param request body httptransport.CreateGrantRequest true "Grant"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /section-editors [post]
func (h Handler) CreateGrantHandler(ctx context.Context, actorID string, req httptransport.CreateGrantRequest) error {
	return h.Service.Grant(ctx, actorID, req.UserID, req.SectionID)
}

// DeleteGrantHandler godoc
// @Summary Revoke section editor rights
// @Tags sections
// @Param X-User-Id header string true "Acting admin"
// @Param userID path string true "User id"
// @Param sectionID path string true "Section id"
// @Success 204
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /section-editors/{userID}/{sectionID} [delete]
func (h Handler) DeleteGrantHandler(ctx context.Context, actorID string, userID string, sectionID string) error {
	return h.Service.Revoke(ctx, actorID, userID, sectionID)
}

func mapSection(section entities.Section) httptransport.SectionDTO {
	dto := httptransport.SectionDTO{ID: section.ID, Title: section.Title}
	for _, sub := range section.Subsections {
		dto.Subsections = append(dto.Subsections, httptransport.SubsectionDTO{ID: sub.ID, Title: sub.Title})
	}
	return dto
}
