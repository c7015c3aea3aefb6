package handler

import (
	"context"
	"errors"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/handler/gen"
)

// CreateUser handles POST /users.
func (s *Server) CreateUser(ctx context.Context, req gen.CreateUserRequestObject) (gen.CreateUserResponseObject, error) {
	if req.Body == nil {
		return gen.CreateUser422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.accounts.Register(ctx, req.Body.Username, req.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateUser422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.CreateUser409JSONResponse(conflictBody("username already registered")), nil
		}
		return nil, err
	}

	return gen.CreateUser201JSONResponse(contributorToResponse(created)), nil
}

// Login handles POST /login.
func (s *Server) Login(ctx context.Context, req gen.LoginRequestObject) (gen.LoginResponseObject, error) {
	if req.Body == nil {
		return gen.Login422JSONResponse(requestBody("request body is required")), nil
	}

	c, err := s.accounts.Login(ctx, req.Body.Username, req.Body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return gen.Login401JSONResponse(unauthorizedBody("incorrect username or password")), nil
		}
		return nil, err
	}

	return gen.Login200JSONResponse{Username: c.Username, Message: "Login successful"}, nil
}

// GetContributor handles GET /contributors/{username}.
func (s *Server) GetContributor(ctx context.Context, req gen.GetContributorRequestObject) (gen.GetContributorResponseObject, error) {
	c, err := s.contributors.Get(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetContributor404JSONResponse(notFoundBody("contributor not found")), nil
		}
		return nil, err
	}

	return gen.GetContributor200JSONResponse(contributorToResponse(c)), nil
}

// contributorToResponse converts a domain.Contributor into the generated API type.
// The password hash never leaves the service.
func contributorToResponse(c domain.Contributor) gen.Contributor {
	return gen.Contributor{
		Id:            c.ID,
		Username:      c.Username,
		DisplayName:   c.DisplayName,
		Contributions: c.Contributions,
		Badge:         c.Badge,
		CreatedAt:     c.CreatedAt,
	}
}
