package executor

import (
	"context"

	"github.com/vigevenoj/kube-java-diagnostics/pkg/target"
)

// Executor runs a command inside a target's container and returns the
// captured output. Implementations block until the remote command
// completes or the transport fails.
type Executor interface {
	Exec(ctx context.Context, t target.Target, command []string) (string, error)
}
