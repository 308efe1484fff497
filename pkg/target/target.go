package target

import "fmt"

// Target identifies where diagnostics are collected from: a container
// within a pod within a namespace. Immutable once resolved.
type Target struct {
	Namespace string
	Pod       string
	Container string
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s[%s]", t.Namespace, t.Pod, t.Container)
}
