package domain

import "errors"

// RoleAdmin is the only role the service issues; the admin surface is for
// the site operator.
const RoleAdmin = "admin"

var ErrInvalidCredentials = errors.New("invalid credentials")
