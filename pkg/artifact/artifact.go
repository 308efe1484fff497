package artifact

import (
	"fmt"
	"time"

	"github.com/vigevenoj/kube-java-diagnostics/pkg/target"
)

// Kind is the type of diagnostic an artifact holds.
type Kind string

const (
	ThreadDump Kind = "thread dump"
	Histogram  Kind = "histogram"
)

var suffixes = map[Kind]string{
	ThreadDump: "threaddump.out",
	Histogram:  "histogram.txt",
}

// Minute granularity. Two artifacts of the same kind for the same target
// within one minute get the same name. Known limitation.
const timestampLayout = "20060102-1504"

// Artifact is one collected diagnostic output plus its metadata. It lives
// only long enough to be persisted.
type Artifact struct {
	Kind        Kind
	Target      target.Target
	Content     string
	CollectedAt time.Time
}

func New(kind Kind, t target.Target, content string) Artifact {
	return Artifact{
		Kind:        kind,
		Target:      t,
		Content:     content,
		CollectedAt: time.Now(),
	}
}

// Filename renders the deterministic name the artifact is saved under:
// {namespace}_{pod}_{YYYYMMDD-HHMM}_{kind suffix}.
func (a Artifact) Filename() string {
	return fmt.Sprintf("%s_%s_%s_%s",
		a.Target.Namespace,
		a.Target.Pod,
		a.CollectedAt.Format(timestampLayout),
		suffixes[a.Kind])
}
