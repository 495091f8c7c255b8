/*
Package redditsdk provides a minimal client for the parts of Reddit's OAuth API used by
the account age service.

# Overview

Reddit requires every API call to carry a descriptive User-Agent and an access token.
Application-only access tokens are obtained with the OAuth2 client credentials grant:

	client := redditsdk.NewClient("web:redditage:v0.1.0 (by /u/someone)")

	tok, err := client.ClientCredentials(ctx, clientID, clientSecret)
	if err != nil {
		return err
	}

	about, err := client.UserAbout(ctx, tok.AccessToken, "spez")

The client does not cache tokens. Callers that issue many requests should keep the token
until shortly before Token.ExpiresIn elapses.

# Errors

Non-2xx upstream responses are returned as *APIError, which keeps the status code and raw
body for diagnostics:

	var apiErr *redditsdk.APIError
	if errors.As(err, &apiErr) {
		log.Warn("reddit rejected request", "status", apiErr.StatusCode)
	}
*/
package redditsdk
