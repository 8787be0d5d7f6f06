package handler

import (
	"context"

	"venue_tracker/be/biz/middleware/jwt"
	"venue_tracker/be/biz/model/domain"
	"venue_tracker/be/biz/model/dto"
	"venue_tracker/be/biz/service/venue"
	"venue_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
)

type VenueHandler struct {
	svc *venue.Service
}

func NewVenueHandler(svc *venue.Service) *VenueHandler {
	return &VenueHandler{svc: svc}
}

// Create 创建场馆
//
//	@Tags			venue
//	@Summary		create a venue
//	@Accept			json
//	@Produce		json
//	@Param			req				body		dto.CreateVenueReq	true	"venue"
//	@Param			Authorization	header		string				true	"Bearer token"
//	@Success		201				{object}	dto.CommonResp{data=dto.VenueResp}
//	@Router			/api/venues [POST]
func (h *VenueHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateVenueReq
	if !bind(ctx, c, &req) {
		return
	}

	v, bizErr := h.svc.Create(ctx, jwt.GetUserID(ctx), venueFromBody(req.VenueBody))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.CreatedResp(c, toVenueResp(v))
}

// Get 场馆详情
//
//	@Tags			venue
//	@Summary		get one venue
//	@Produce		json
//	@Param			id				path		string	true	"venue id"
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{object}	dto.CommonResp{data=dto.VenueResp}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/api/venues/{id} [GET]
func (h *VenueHandler) Get(ctx context.Context, c *app.RequestContext) {
	var req dto.VenueIDReq
	if !bind(ctx, c, &req) {
		return
	}

	v, bizErr := h.svc.Get(ctx, jwt.GetUserID(ctx), req.ID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, toVenueResp(v))
}

// List 场馆列表
//
//	@Tags			venue
//	@Summary		list venues of the authenticated user
//	@Produce		json
//	@Param			page			query		int		false	"page, from 1"
//	@Param			page_size		query		int		false	"page size, at most 100"
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListVenuesResp}
//	@Router			/api/venues [GET]
func (h *VenueHandler) List(ctx context.Context, c *app.RequestContext) {
	var req dto.ListVenuesReq
	if !bind(ctx, c, &req) {
		return
	}

	page, bizErr := h.svc.List(ctx, jwt.GetUserID(ctx), req.Page, req.PageSize)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	out := dto.ListVenuesResp{
		PageResp: dto.PageResp{Page: page.Page, PageSize: page.PageSize, Total: page.Total},
		Venues:   make([]dto.VenueResp, 0, len(page.Venues)),
	}
	for _, v := range page.Venues {
		out.Venues = append(out.Venues, toVenueResp(v))
	}
	resp.SuccessResp(c, out)
}

// Update 更新场馆
//
//	@Tags			venue
//	@Summary		update a venue
//	@Accept			json
//	@Produce		json
//	@Param			id				path		string				true	"venue id"
//	@Param			req				body		dto.UpdateVenueReq	true	"venue"
//	@Param			Authorization	header		string				true	"Bearer token"
//	@Success		200				{object}	dto.CommonResp{data=dto.VenueResp}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/api/venues/{id} [PUT]
func (h *VenueHandler) Update(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateVenueReq
	if !bind(ctx, c, &req) {
		return
	}

	v := venueFromBody(req.VenueBody)
	v.VenueID = req.ID
	updated, bizErr := h.svc.Update(ctx, jwt.GetUserID(ctx), v)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, toVenueResp(updated))
}

// Delete 删除场馆
//
//	@Tags			venue
//	@Summary		delete a venue
//	@Produce		json
//	@Param			id				path		string	true	"venue id"
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{object}	dto.CommonResp{data=dto.DeleteVenueResp}
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/api/venues/{id} [DELETE]
func (h *VenueHandler) Delete(ctx context.Context, c *app.RequestContext) {
	var req dto.VenueIDReq
	if !bind(ctx, c, &req) {
		return
	}

	if bizErr := h.svc.Delete(ctx, jwt.GetUserID(ctx), req.ID); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.DeleteVenueResp{})
}

func venueFromBody(b dto.VenueBody) *domain.Venue {
	return &domain.Venue{
		Name:      b.Name,
		Address:   b.Address,
		City:      b.City,
		State:     b.State,
		Country:   b.Country,
		ZipCode:   b.ZipCode,
		Capacity:  b.Capacity,
		Website:   b.Website,
		TechSpecs: b.TechSpecs,
		Notes:     b.Notes,
	}
}

func toVenueResp(v *domain.Venue) dto.VenueResp {
	return dto.VenueResp{
		ID:        v.VenueID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		State:     v.State,
		Country:   v.Country,
		ZipCode:   v.ZipCode,
		Capacity:  v.Capacity,
		Website:   v.Website,
		TechSpecs: v.TechSpecs,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}
