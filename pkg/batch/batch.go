package batch

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vigevenoj/kube-java-diagnostics/config"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/artifact"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/collector"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/locator"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/stores"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/target"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Result records the outcome of one target's pipeline. Failure isolation
// is part of the contract: one target's errors never abort the batch.
type Result struct {
	Target target.Target
	PID    string
	Saved  []string
	Errs   []error
}

// Failed reports whether any stage of the target's pipeline failed.
func (r Result) Failed() bool {
	return len(r.Errs) > 0
}

// Runner drives the locate -> collect -> persist pipeline over a batch of
// targets, one target at a time.
type Runner struct {
	clientset kubernetes.Interface
	locator   *locator.Locator
	collector *collector.Collector
	store     stores.Store
	config    *config.Config
}

func New(clientset kubernetes.Interface, loc *locator.Locator, col *collector.Collector, store stores.Store, cfg *config.Config) *Runner {
	return &Runner{
		clientset: clientset,
		locator:   loc,
		collector: col,
		store:     store,
		config:    cfg,
	}
}

// Resolve builds the batch of targets: the single configured pod if one is
// named, otherwise every pod in the namespace matching the label selector,
// in listing order.
func (r *Runner) Resolve(ctx context.Context) ([]target.Target, error) {
	if r.config.Pod != "" {
		return []target.Target{{
			Namespace: r.config.Namespace,
			Pod:       r.config.Pod,
			Container: r.config.Container,
		}}, nil
	}

	pods, err := r.clientset.CoreV1().Pods(r.config.Namespace).List(ctx, metav1.ListOptions{
		LabelSelector: r.config.LabelSelector,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "listing pods in %s", r.config.Namespace)
	}

	targets := make([]target.Target, 0, len(pods.Items))
	for _, pod := range pods.Items {
		targets = append(targets, target.Target{
			Namespace: r.config.Namespace,
			Pod:       pod.Name,
			Container: r.config.Container,
		})
	}
	return targets, nil
}

// Run resolves the batch and collects diagnostics from each target in
// turn. The returned error covers resolution only; per-target failures
// live in the results.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	targets, err := r.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		results = append(results, r.collect(ctx, t))
	}

	collected := 0
	for _, res := range results {
		if !res.Failed() {
			collected++
		}
	}
	logrus.Printf("Collected diagnostics from %d of %d targets", collected, len(results))

	return results, nil
}

func (r *Runner) collect(ctx context.Context, t target.Target) Result {
	res := Result{Target: t}

	pid, err := r.locator.Locate(ctx, t)
	if err != nil {
		logrus.Errorf("Skipping %s: %s", t, err)
		res.Errs = append(res.Errs, err)
		return res
	}
	res.PID = pid

	// Both diagnostics are attempted regardless of the other's outcome.
	if dump, err := r.collector.ThreadDump(ctx, t, pid); err != nil {
		logrus.Errorf("Thread dump failed for %s: %s", t, err)
		res.Errs = append(res.Errs, err)
	} else {
		r.persist(artifact.New(artifact.ThreadDump, t, dump), &res)
	}

	if histogram, err := r.collector.Histogram(ctx, t, pid); err != nil {
		logrus.Errorf("Histogram failed for %s: %s", t, err)
		res.Errs = append(res.Errs, err)
	} else {
		r.persist(artifact.New(artifact.Histogram, t, histogram), &res)
	}

	return res
}

func (r *Runner) persist(a artifact.Artifact, res *Result) {
	name, err := r.store.Save(a)
	if err != nil {
		logrus.Errorf("Failed saving %s for %s: %s", a.Kind, a.Target, err)
		res.Errs = append(res.Errs, err)
		return
	}
	res.Saved = append(res.Saved, name)
}
