package api

import (
	"context"
	"fmt"
	"net/url"

	"movie-booking/internal/dto/response"
	"movie-booking/pkg/transport"

	"go.uber.org/zap"
)

type MovieAPI interface {
	GetMovies(ctx context.Context) ([]response.Movie, error)
	SearchMovies(ctx context.Context, query string) ([]response.Movie, error)
}

type movieAPI struct {
	rt  Requester
	log *zap.Logger
}

func NewMovieAPI(rt Requester, log *zap.Logger) MovieAPI {
	return &movieAPI{
		rt:  rt,
		log: log.With(zap.String("api", "movie")),
	}
}

func (a *movieAPI) GetMovies(ctx context.Context) ([]response.Movie, error) {
	raw, err := a.rt.Request(ctx, "/movies", transport.Options{})
	if err != nil {
		return nil, err
	}

	var movies []response.Movie
	if err := response.DecodeData(raw, &movies); err != nil {
		return nil, fmt.Errorf("decode movies response: %w", err)
	}

	return movies, nil
}

func (a *movieAPI) SearchMovies(ctx context.Context, query string) ([]response.Movie, error) {
	endpoint := "/movies/search?q=" + url.QueryEscape(query)

	raw, err := a.rt.Request(ctx, endpoint, transport.Options{})
	if err != nil {
		return nil, err
	}

	var movies []response.Movie
	if err := response.DecodeData(raw, &movies); err != nil {
		return nil, fmt.Errorf("decode movie search response: %w", err)
	}

	return movies, nil
}
