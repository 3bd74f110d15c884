package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alphahows/hows/internal/user/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/gotomicro/ego/core/elog"
	uuid "github.com/lithammer/shortuuid/v4"
	"github.com/spf13/cast"
)

const authURLPattern = "https://kauth.kakao.com/oauth/authorize?client_id=%s&redirect_uri=%s&response_type=code&state=%s"

type OAuth2Service interface {
	AuthURL() (string, error)
	VerifyCode(ctx context.Context, code string) (domain.KakaoInfo, error)
}

type KakaoOAuth2Service struct {
	clientId     string
	clientSecret string
	redirectURL  string
	tokenURL     string
	profileURL   string
	logger       *elog.Component
	client       *http.Client
}

func NewKakaoService(clientId, clientSecret, redirectURL string) OAuth2Service {
	return &KakaoOAuth2Service{
		redirectURL:  redirectURL,
		tokenURL:     "https://kauth.kakao.com/oauth/token",
		profileURL:   "https://kapi.kakao.com/v2/user/me",
		logger:       elog.DefaultLogger,
		client:       http.DefaultClient,
		clientId:     clientId,
		clientSecret: clientSecret,
	}
}

func (s *KakaoOAuth2Service) AuthURL() (string, error) {
	state := uuid.New()
	return fmt.Sprintf(authURLPattern, s.clientId, url.QueryEscape(s.redirectURL), state), nil
}

func (s *KakaoOAuth2Service) VerifyCode(ctx context.Context, code string) (domain.KakaoInfo, error) {
	var token tokenResult
	err := httpx.NewRequest(ctx, http.MethodPost, s.tokenURL).
		Client(s.client).
		AddParam("grant_type", "authorization_code").
		AddParam("client_id", s.clientId).
		AddParam("client_secret", s.clientSecret).
		AddParam("redirect_uri", s.redirectURL).
		AddParam("code", code).Do().
		JSONScan(&token)
	if err != nil {
		return domain.KakaoInfo{}, err
	}
	if token.Error != "" {
		return domain.KakaoInfo{},
			fmt.Errorf("换取 access_token 失败 %s, %s", token.Error, token.ErrorDescription)
	}

	var profile map[string]any
	err = httpx.NewRequest(ctx, http.MethodGet, s.profileURL).
		Client(s.client).
		AddHeader("Authorization", "Bearer "+token.AccessToken).Do().
		JSONScan(&profile)
	if err != nil {
		return domain.KakaoInfo{}, err
	}
	return s.toInfo(profile)
}

func (s *KakaoOAuth2Service) toInfo(profile map[string]any) (domain.KakaoInfo, error) {
	id, err := cast.ToInt64E(profile["id"])
	if err != nil || id == 0 {
		return domain.KakaoInfo{}, fmt.Errorf("kakao 用户信息缺少 id %v", profile["id"])
	}
	info := domain.KakaoInfo{Id: id, Attributes: profile}
	account := cast.ToStringMap(profile["kakao_account"])
	info.Email = strings.TrimSpace(cast.ToString(account["email"]))
	info.Nickname = cast.ToString(cast.ToStringMap(account["profile"])["nickname"])
	if info.Nickname == "" {
		info.Nickname = cast.ToString(cast.ToStringMap(profile["properties"])["nickname"])
	}
	return info, nil
}

type tokenResult struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`

	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}
