package services

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the verified identity behind a bearer credential. It lives
// for one request and is never persisted.
type Principal struct {
	Email  string
	Name   string
	Claims jwt.MapClaims
}

// TokenVerifier exchanges a bearer credential for a verified Principal.
// The identity provider owns token issuance; this side only checks the
// signature and lifts out the identity claims.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// RSAVerifier validates RS256 tokens against the identity provider's
// published PEM public key.
type RSAVerifier struct {
	publicKey *rsa.PublicKey
}

func NewRSAVerifier(publicKeyPEM string) (*RSAVerifier, error) {
	if publicKeyPEM == "" {
		return nil, fmt.Errorf("no JWT public key provided")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("error while parsing public key: %w", err)
	}
	return &RSAVerifier{publicKey: publicKey}, nil
}

func (v *RSAVerifier) Verify(tokenString string) (*Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token is invalid: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("token is invalid")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("token is invalid (email absent from claim)")
	}
	name, _ := claims["name"].(string)

	return &Principal{Email: email, Name: name, Claims: claims}, nil
}
