// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrNoToken is returned when a login succeeds but the response carries no
// recognisable token.
var ErrNoToken = errors.New("api: login response did not include a token")

// Credentials are the admin's login details.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is the outcome of a successful login.
type Identity struct {
	Token       string
	Email       string
	DisplayName string
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Identity, error) {
	v, err := c.fetch(ctx, request{method: http.MethodPost, path: c.loginPath, json: creds})
	if err != nil {
		return nil, err
	}

	root := asRecord(v)
	if root == nil {
		return nil, ErrNoToken
	}
	id := &Identity{Token: root.str("token", "access_token", "accessToken")}
	data := root.object("data")
	if id.Token == "" && data != nil {
		id.Token = data.str("token", "access_token", "accessToken")
	}
	if id.Token == "" {
		return nil, ErrNoToken
	}

	user := root.object("user")
	if user == nil && data != nil {
		user = data.object("user")
	}
	id.Email = creds.Email
	if user != nil {
		if email := user.str("email"); email != "" {
			id.Email = email
		}
		id.DisplayName = user.str("name", "full_name", "display_name")
		if id.DisplayName == "" {
			id.DisplayName = strings.TrimSpace(user.str("first_name", "firstName") + " " + user.str("last_name", "lastName"))
		}
	}
	if id.DisplayName == "" {
		id.DisplayName, _, _ = strings.Cut(id.Email, "@")
	}
	return id, nil
}

// Logout revokes the token held in ctx. Backends without a logout endpoint
// answer 404, which is not an error here.
func (c *Client) Logout(ctx context.Context) error {
	path := strings.TrimSuffix(c.loginPath, "/login") + "/logout"
	_, err := c.send(ctx, request{method: http.MethodPost, path: path, auth: true})
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
