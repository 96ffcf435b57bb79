//go:build !darwin && !linux

package notify

import (
	"context"
	"errors"
)

// send has no desktop integration on this platform.
func send(ctx context.Context, id string, n Notification) error {
	return errors.New("desktop notifications are not supported on this platform")
}
