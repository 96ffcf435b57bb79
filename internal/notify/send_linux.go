//go:build linux

package notify

import (
	"context"
	"os/exec"
)

// send shows a notification with notify-send (libnotify).
func send(ctx context.Context, id string, n Notification) error {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, path, notifySendArgs(id, n)...)
	return cmd.Start()
}
