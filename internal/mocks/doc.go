// Package mocks provides shared test doubles.
//
// The hand-written mocks here cover the authentication collaborators
// (JWT service, password verifier, user store). Set a function field to
// script one call, or rely on the default fields:
//
//	jwt := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: 7, Role: domain.RoleStudent}, nil
//	    },
//	}
//
// The study services used by the HTTP handlers have gomock mocks generated
// by mockgen in the progress and access subpackages; run go generate after
// changing those interfaces.
package mocks
