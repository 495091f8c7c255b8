package redditsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ClientCredentials obtains an application-only access token using the OAuth2
// client_credentials grant. The client id and secret are sent with HTTP Basic auth
// as Reddit requires.
//
// Non-2xx responses are returned as *APIError.
func (c *Client) ClientCredentials(ctx context.Context, clientID, clientSecret string) (*Token, error) {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     c.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient())

	tok, err := cfg.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, &APIError{
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       retrieveErr.Body,
			}
		}
		return nil, fmt.Errorf("token request failed: %w", err)
	}

	lifetime := tokenLifetime(tok)
	if lifetime <= 0 {
		return nil, errors.New("token response missing expires_in")
	}

	return &Token{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   lifetime,
	}, nil
}

// tokenLifetime reads the declared lifetime, preferring the raw expires_in value
// over the computed Expiry timestamp.
func tokenLifetime(tok *oauth2.Token) time.Duration {
	if tok.ExpiresIn > 0 {
		return time.Duration(tok.ExpiresIn) * time.Second
	}

	switch v := tok.Extra("expires_in").(type) {
	case float64:
		return time.Duration(v) * time.Second
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return time.Duration(n) * time.Second
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Second
		}
	}

	if !tok.Expiry.IsZero() {
		return time.Until(tok.Expiry)
	}
	return 0
}
