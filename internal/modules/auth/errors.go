package auth

import "errors"

var ErrIssuerDisabled = errors.New("token issuer disabled")
