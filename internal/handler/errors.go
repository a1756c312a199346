package handler

import "errors"

var errNoListenAddress = errors.New("handler: server address is not configured")
