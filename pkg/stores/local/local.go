package local

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/artifact"
)

// Local writes artifacts as plain text files under Dir.
type Local struct {
	Dir string
}

func New(dir string) *Local {
	if dir == "" {
		dir = "."
	}
	return &Local{Dir: dir}
}

// Save writes the artifact's full text in a single operation and logs a
// confirmation. A failed write may leave a partial file behind.
func (l *Local) Save(a artifact.Artifact) (string, error) {
	name := a.Filename()
	if err := os.WriteFile(filepath.Join(l.Dir, name), []byte(a.Content), 0644); err != nil {
		return "", errors.Wrapf(err, "saving %s for %s", a.Kind, a.Target)
	}

	logrus.Printf("Saved %s as %s", a.Kind, name)
	return name, nil
}
