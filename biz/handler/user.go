package handler

import (
	"context"

	"venue_tracker/be/biz/middleware/jwt"
	"venue_tracker/be/biz/model/dto"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/service/user"
	"venue_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UserHandler struct {
	svc *user.Service
}

func NewUserHandler(svc *user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register 用户注册接口
//
//	@Tags			auth
//	@Summary		register a new account
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.RegisterReq	true	"register request body"
//	@Success		201	{object}	dto.CommonResp{data=dto.AuthResp}
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		409	{object}	dto.CommonResp
//	@Router			/api/auth/register [POST]
func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var req dto.RegisterReq
	if !bind(ctx, c, &req) {
		return
	}

	res, bizErr := h.svc.Register(ctx, req.Name, req.Email, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.CreatedResp(c, toAuthResp(res))
}

// Login 用户登录接口
//
//	@Tags			auth
//	@Summary		exchange email and password for a bearer token
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.AuthResp}
//	@Failure		401	{object}	dto.CommonResp
//	@Router			/api/auth/login [POST]
func (h *UserHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if !bind(ctx, c, &req) {
		return
	}

	res, bizErr := h.svc.Login(ctx, req.Email, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, toAuthResp(res))
}

// GetProfile 获取用户信息接口
//
//	@Tags			auth
//	@Summary		profile of the authenticated user
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{object}	dto.CommonResp{data=dto.GetProfileResp}
//	@Failure		401				{object}	dto.CommonResp
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/api/auth/profile [GET]
func (h *UserHandler) GetProfile(ctx context.Context, c *app.RequestContext) {
	userID := jwt.GetUserID(ctx)
	if userID == "" {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	p, bizErr := h.svc.GetProfile(ctx, userID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.GetProfileResp{
		ID:        p.UserID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role,
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	})
}

// ChangePassword 更新密码接口
//
//	@Tags			auth
//	@Summary		change the password of the authenticated user
//	@Accept			json
//	@Produce		json
//	@Param			req				body		dto.ChangePasswordReq	true	"change password request body"
//	@Param			Authorization	header		string					true	"Bearer token"
//	@Success		200				{object}	dto.CommonResp{data=dto.ChangePasswordResp}
//	@Failure		401				{object}	dto.CommonResp
//	@Router			/api/auth/password [PUT]
func (h *UserHandler) ChangePassword(ctx context.Context, c *app.RequestContext) {
	var req dto.ChangePasswordReq
	if !bind(ctx, c, &req) {
		return
	}

	userID := jwt.GetUserID(ctx)
	if userID == "" {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	changed, bizErr := h.svc.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	hlog.CtxInfof(ctx, "password change for %s, changed=%v", userID, changed)
	resp.SuccessResp(c, dto.ChangePasswordResp{Changed: changed})
}

func toAuthResp(res *user.AuthResult) dto.AuthResp {
	return dto.AuthResp{
		ID:        res.UserID,
		Name:      res.Name,
		Email:     res.Email,
		Role:      res.Role,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	}
}
