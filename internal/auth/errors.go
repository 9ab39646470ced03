package auth

import (
	"fmt"

	"casting-agency/internal/apperror"
)

const (
	CodeInvalidHeader = "invalid_header"
	CodeTokenExpired  = "token_expired"
	CodeInvalidClaims = "invalid_claims"
	CodeUnauthorized  = "unauthorized"
)

// AuthError is the guard's structured rejection. It is rendered verbatim as
// the "message" of a 401 response.
type AuthError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Kind separates a missing scope (authorization) from a bad token (authentication).
func (e *AuthError) Kind() apperror.Kind {
	if e.Code == CodeUnauthorized {
		return apperror.KindAuthorization
	}
	return apperror.KindAuthentication
}

func newAuthError(code, description string) *AuthError {
	return &AuthError{Code: code, Description: description}
}

var (
	errHeaderMissing     = newAuthError(CodeInvalidHeader, "Authorization header is expected.")
	errHeaderNotBearer   = newAuthError(CodeInvalidHeader, `Authorization header must start with "Bearer".`)
	errTokenNotFound     = newAuthError(CodeInvalidHeader, "Token not found.")
	errHeaderMalformed   = newAuthError(CodeInvalidHeader, "Authorization header must be bearer token.")
	errTokenUnparseable  = newAuthError(CodeInvalidHeader, "Unable to parse authentication token.")
	errKidMissing        = newAuthError(CodeInvalidHeader, "Authorization malformed.")
	errNoMatchingKey     = newAuthError(CodeInvalidHeader, "Unable to find the appropriate key")
	errTokenExpired      = newAuthError(CodeTokenExpired, "Token expired.")
	errIncorrectClaims   = newAuthError(CodeInvalidClaims, "Incorrect claims. Please, check the audience and issuer.")
	errPermissionsAbsent = newAuthError(CodeInvalidClaims, "Permissions not included in JWT")
	errPermissionMissing = newAuthError(CodeUnauthorized, "Permission not found.")
)
