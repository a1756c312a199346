// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Session wraps the signed JWT stored in the session cookie.
//
// The subject claim carries the identity provider's account id of the
// signed-in user; it is the only state the session holds.
type Session struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UID is the external account id parsed from the subject claim.
	UID int64 `json:"-"`
}

// GetUID extracts the external account id from the session's subject claim.
func (s *Session) GetUID() (int64, error) {
	uidString, err := s.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UID from session: %w", err)
	}

	uid, err := strconv.ParseInt(uidString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UID from session to int64: %w", err)
	}

	return uid, nil
}

// String returns the compact JWS serialization of the session token.
func (s *Session) String() string {
	return s.SignedString
}
