package api

import (
	"context"
	"fmt"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/transport"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (*response.AuthData, error)
	Login(ctx context.Context, email, password string) (*response.AuthData, error)
}

type authAPI struct {
	rt  Requester
	log *zap.Logger
}

func NewAuthAPI(rt Requester, log *zap.Logger) AuthAPI {
	return &authAPI{
		rt:  rt,
		log: log.With(zap.String("api", "auth")),
	}
}

func (a *authAPI) Register(ctx context.Context, name, email, password string) (*response.AuthData, error) {
	req := &request.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		a.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	raw, err := a.rt.Request(ctx, "/auth/register", transport.Options{
		Method: http.MethodPost,
		Body:   req,
	})
	if err != nil {
		return nil, err
	}

	var data response.AuthData
	if err := response.DecodeData(raw, &data); err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}

	return &data, nil
}

func (a *authAPI) Login(ctx context.Context, email, password string) (*response.AuthData, error) {
	req := &request.LoginRequest{
		Email:    email,
		Password: password,
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		a.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	raw, err := a.rt.Request(ctx, "/auth/login", transport.Options{
		Method: http.MethodPost,
		Body:   req,
	})
	if err != nil {
		return nil, err
	}

	var data response.AuthData
	if err := response.DecodeData(raw, &data); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}

	return &data, nil
}
