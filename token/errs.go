package token

import "errors"

var ErrUnterminatedString = errors.New("unterminated string")
