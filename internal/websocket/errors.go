package websocket

import "errors"

var ErrHubClosed = errors.New("hub is stopped")
