package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alphahows/hows/internal/pkg/identity"
	"github.com/alphahows/hows/internal/user/internal/domain"
	"github.com/alphahows/hows/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	kakaoSvc service.OAuth2Service
	userSvc  service.UserService
	resolver *identity.Resolver
}

func NewHandler(kakaoSvc service.OAuth2Service,
	userSvc service.UserService, resolver *identity.Resolver) *Handler {
	return &Handler{
		kakaoSvc: kakaoSvc,
		userSvc:  userSvc,
		resolver: resolver,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/users/login", ginx.B[LoginReq](h.Login))
	oauth2 := server.Group("/oauth2")
	oauth2.GET("/kakao/auth_url", ginx.W(h.KakaoAuthURL))
	oauth2.GET("/kakao/callback", ginx.B[KakaoCallback](h.KakaoCallback))
	oauth2.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) KakaoAuthURL(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.kakaoSvc.AuthURL()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Login 邮箱密码登录
func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.LocalLogin(ctx.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		ctx.JSON(http.StatusUnauthorized, loginFailedResult)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if err != nil {
		return systemErrorResult, err
	}
	err = h.buildSession(ctx, u, identity.LocalSubject{Subject: u.Email})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) KakaoCallback(ctx *ginx.Context, req KakaoCallback) (ginx.Result, error) {
	info, err := h.kakaoSvc.VerifyCode(ctx.Request.Context(), req.Code)
	if err != nil {
		return systemErrorResult, err
	}
	principal := identity.SocialProfile{
		Provider: "kakao",
		Name:     strconv.FormatInt(info.Id, 10),
		Attributes: map[string]any{
			"id":            info.Id,
			"kakao_account": map[string]any{"email": info.Email},
		},
	}
	email, err := h.resolver.Resolve(&identity.Authentication{
		Authenticated: true,
		Principal:     principal,
	})
	if err != nil {
		return systemErrorResult, err
	}
	u, err := h.userSvc.FindOrCreateBySocial(ctx.Request.Context(), domain.User{
		Email:    email,
		Nickname: info.Nickname,
		Provider: domain.ProviderKakao,
		Profile:  info.Attributes,
	})
	if err != nil {
		return systemErrorResult, err
	}
	err = h.buildSession(ctx, u, principal)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) buildSession(ctx *ginx.Context, u domain.User, p identity.Principal) error {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(identity.ClaimsOf(p)).Build()
	return err
}
