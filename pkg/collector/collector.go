package collector

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/executor"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/target"
)

// Collector issues jcmd diagnostic commands against a located pid. The
// returned text is an opaque blob; nothing is parsed or validated here.
type Collector struct {
	exec executor.Executor
}

func New(exec executor.Executor) *Collector {
	return &Collector{exec: exec}
}

// ThreadDump returns the text of a full thread stack dump for the pid.
func (c *Collector) ThreadDump(ctx context.Context, t target.Target, pid string) (string, error) {
	out, err := c.exec.Exec(ctx, t, []string{"jcmd", pid, "Thread.print"})
	if err != nil {
		return "", errors.Wrapf(err, "dumping threads of pid %s in %s", pid, t)
	}
	return out, nil
}

// Histogram returns a class histogram of the heap for the pid.
func (c *Collector) Histogram(ctx context.Context, t target.Target, pid string) (string, error) {
	out, err := c.exec.Exec(ctx, t, []string{"jcmd", pid, "GC.class_histogram"})
	if err != nil {
		return "", errors.Wrapf(err, "collecting class histogram of pid %s in %s", pid, t)
	}
	return out, nil
}
