package collector

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/target"
)

type fakeExecutor struct {
	output string
	err    error
	calls  [][]string
}

func (f *fakeExecutor) Exec(ctx context.Context, t target.Target, command []string) (string, error) {
	f.calls = append(f.calls, command)
	return f.output, f.err
}

func Test_ThreadDump(t *testing.T) {
	tgt := target.Target{Namespace: "prod", Pod: "webapp-0", Container: "webapp"}
	exec := &fakeExecutor{output: "Full thread dump"}
	c := New(exec)

	out, err := c.ThreadDump(context.Background(), tgt, "1234")

	assert.Nil(t, err)
	assert.Equal(t, "Full thread dump", out)
	assert.Equal(t, [][]string{{"jcmd", "1234", "Thread.print"}}, exec.calls)
}

func Test_Histogram(t *testing.T) {
	tgt := target.Target{Namespace: "prod", Pod: "webapp-0", Container: "webapp"}
	exec := &fakeExecutor{output: "num #instances #bytes class name"}
	c := New(exec)

	out, err := c.Histogram(context.Background(), tgt, "1234")

	assert.Nil(t, err)
	assert.Equal(t, "num #instances #bytes class name", out)
	assert.Equal(t, [][]string{{"jcmd", "1234", "GC.class_histogram"}}, exec.calls)
}

func Test_TransportFailure(t *testing.T) {
	tgt := target.Target{Namespace: "prod", Pod: "webapp-0", Container: "webapp"}
	exec := &fakeExecutor{err: errors.New("connection refused")}
	c := New(exec)

	_, err := c.ThreadDump(context.Background(), tgt, "1234")
	assert.NotNil(t, err)

	_, err = c.Histogram(context.Background(), tgt, "1234")
	assert.NotNil(t, err)
}
