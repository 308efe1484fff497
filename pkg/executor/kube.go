package executor

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/target"
	v1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/remotecommand"
)

// Kube executes commands through the Kubernetes pod exec subresource.
type Kube struct {
	clientset  kubernetes.Interface
	restConfig *rest.Config
}

// NewKube returns an Executor backed by the given clientset. The rest
// config is needed to open the SPDY stream for exec.
func NewKube(clientset kubernetes.Interface, restConfig *rest.Config) *Kube {
	return &Kube{
		clientset:  clientset,
		restConfig: restConfig,
	}
}

// Exec runs the command in the target's container and returns the combined
// stdout/stderr text.
func (k *Kube) Exec(ctx context.Context, t target.Target, command []string) (string, error) {
	req := k.clientset.CoreV1().RESTClient().Post().
		Resource("pods").
		Name(t.Pod).
		Namespace(t.Namespace).
		SubResource("exec").
		VersionedParams(&v1.PodExecOptions{
			Container: t.Container,
			Command:   command,
			Stdout:    true,
			Stderr:    true,
		}, scheme.ParameterCodec)

	exec, err := remotecommand.NewSPDYExecutor(k.restConfig, "POST", req.URL())
	if err != nil {
		return "", errors.Wrapf(err, "creating exec stream for %s", t)
	}

	var stdout, stderr bytes.Buffer
	err = exec.StreamWithContext(ctx, remotecommand.StreamOptions{
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		return "", errors.Wrapf(err, "running %v in %s", command, t)
	}

	return stdout.String() + stderr.String(), nil
}
