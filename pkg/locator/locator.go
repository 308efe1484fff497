package locator

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/executor"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/target"
)

// ErrProcessNotFound reports that no process in the container matched the
// configured marker. Callers should skip collection for that target rather
// than retry.
var ErrProcessNotFound = errors.New("no matching java process found")

// jcmd with no arguments lists every JVM in the container, one per line,
// pid first.
var listCommand = []string{"jcmd"}

// Locator finds the pid of the JVM whose command line contains the
// configured marker string.
type Locator struct {
	exec   executor.Executor
	marker string
}

func New(exec executor.Executor, marker string) *Locator {
	return &Locator{
		exec:   exec,
		marker: marker,
	}
}

// Locate runs the process listing in the target's container and extracts
// the pid of the first process whose line contains the marker. A transport
// failure propagates as-is; a listing with no usable match returns
// ErrProcessNotFound.
func (l *Locator) Locate(ctx context.Context, t target.Target) (string, error) {
	out, err := l.exec.Exec(ctx, t, listCommand)
	if err != nil {
		return "", errors.Wrapf(err, "listing processes in %s", t)
	}

	pid, ok := Parse(out, l.marker)
	if !ok {
		logrus.Errorf("No pid matching %q found in %s", l.marker, t)
		return "", ErrProcessNotFound
	}

	return pid, nil
}

// Parse scans the process listing line by line and returns the leading
// token of the first line containing marker. The match is a case-sensitive
// substring match and the first matching line wins. It returns ok=false
// when no line matches, or when the matching line does not start with a
// purely numeric pid.
func Parse(output string, marker string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || !isNumeric(fields[0]) {
			return "", false
		}

		return fields[0], true
	}
	return "", false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
