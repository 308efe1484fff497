package stores

import (
	"github.com/vigevenoj/kube-java-diagnostics/pkg/artifact"
)

// Store persists a collected artifact and returns the name it was saved
// under.
type Store interface {
	Save(a artifact.Artifact) (string, error)
}

type Default struct{}

func (d *Default) Save(a artifact.Artifact) (string, error) {
	return a.Filename(), nil
}
