// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/fave-tweets/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying the
// identity provider's account id of the signed-in user.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the external account id encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required and uid must be positive.
//
// Example usage:
//
//	session, err := utils.GenerateSessionToken("fave-tweets", 12345, 24*time.Hour, "secret")
func GenerateSessionToken(issuer string, uid int64, tokenDuration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || uid <= 0 {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(uid, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return models.Session{Token: token, RegisteredClaims: claims, SignedString: tokenString, UID: uid}, nil
}

// ValidateAndParseSessionToken verifies the signature, issuer and expiry of
// tokenString and extracts the external account id from its subject.
//
// Example usage:
//
//	session, err := utils.ValidateAndParseSessionToken(cookie.Value, "secret", "fave-tweets")
//	if err != nil {
//	    // treat the request as anonymous
//	}
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Session, error) {
	session := &models.Session{}
	token, err := jwt.ParseWithClaims(tokenString, session, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	uid, err := session.GetUID()
	if err != nil {
		return models.Session{}, err
	}
	if uid <= 0 {
		return models.Session{}, errors.New("session subject is not a valid account id")
	}

	session.Token = token
	session.SignedString = tokenString
	session.UID = uid

	return *session, nil
}
