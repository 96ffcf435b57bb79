//go:build darwin

package notify

import (
	"context"
	"os/exec"
)

// send shows a notification through System Events via osascript. Display
// notification has no hint slot, so the id only appears in the log.
func send(ctx context.Context, id string, n Notification) error {
	cmd := exec.CommandContext(ctx, "osascript", "-e", appleScript(n))
	return cmd.Start()
}
