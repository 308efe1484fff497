package local

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/artifact"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/target"
)

func Test_Save(t *testing.T) {
	dir := t.TempDir()
	tgt := target.Target{Namespace: "prod", Pod: "webapp-0", Container: "webapp"}
	a := artifact.Artifact{
		Kind:        artifact.ThreadDump,
		Target:      tgt,
		Content:     "Full thread dump",
		CollectedAt: time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC),
	}

	name, err := New(dir).Save(a)

	assert.Nil(t, err)
	assert.Equal(t, "prod_webapp-0_20240309-1405_threaddump.out", name)

	content, err := os.ReadFile(path.Join(dir, name))
	assert.Nil(t, err)
	assert.Equal(t, "Full thread dump", string(content))
}

func Test_SaveWriteFailure(t *testing.T) {
	tgt := target.Target{Namespace: "prod", Pod: "webapp-0", Container: "webapp"}
	a := artifact.New(artifact.Histogram, tgt, "histogram text")

	name, err := New(path.Join(t.TempDir(), "does-not-exist")).Save(a)

	assert.NotNil(t, err)
	assert.Equal(t, "", name)
}

func Test_NewDefaultsToWorkingDirectory(t *testing.T) {
	l := New("")
	assert.Equal(t, ".", l.Dir)
}
