package batch

import (
	"io"
	"time"

	"github.com/hyperledger/fabric-lib-go/common/metrics"
	"github.com/pkg/errors"
)

var (
	tasksCompletedOpts = metrics.CounterOpts{
		Namespace:    "bignum",
		Subsystem:    "batch",
		Name:         "tasks_completed",
		Help:         "The number of batch tasks that have finished.",
		LabelNames:   []string{"task", "success"},
		StatsdFormat: "%{#fqname}.%{task}.%{success}",
	}

	taskDurationOpts = metrics.HistogramOpts{
		Namespace:    "bignum",
		Subsystem:    "batch",
		Name:         "task_duration",
		Help:         "Time taken in seconds to run a batch task.",
		LabelNames:   []string{"task"},
		StatsdFormat: "%{#fqname}.%{task}",
		Buckets:      []float64{0.001, 0.01, 0.1, 1, 10, 60},
	}
)

// Runner reads inputs and runs tasks over them, recording their outcome.
type Runner struct {
	tasksCompleted metrics.Counter
	taskDuration   metrics.Histogram
}

// NewRunner returns a Runner that reports to the given metrics provider.
func NewRunner(p metrics.Provider) *Runner {
	return &Runner{
		tasksCompleted: p.NewCounter(tasksCompletedOpts),
		taskDuration:   p.NewHistogram(taskDurationOpts),
	}
}

// Process tokenizes the input and runs the task over it.
// Tokens left after the task are ignored.
func (r *Runner) Process(t Task, input io.Reader) (string, error) {
	start := time.Now()
	out, err := r.process(t, input)
	r.taskDuration.With("task", t.Name()).Observe(time.Since(start).Seconds())
	r.tasksCompleted.With("task", t.Name(), "success", successLabel(err)).Add(1)
	if err != nil {
		return "", errors.WithMessagef(err, "%s task failed", t.Name())
	}
	return out, nil
}

func (r *Runner) process(t Task, input io.Reader) (string, error) {
	in, err := ReadTokens(input)
	if err != nil {
		return "", err
	}
	logger.Debugf("running %s task over %d token(s)", t.Name(), in.Remaining())

	out, err := t.Run(in)
	if err != nil {
		return "", err
	}
	if n := in.Remaining(); n > 0 {
		logger.Warningf("ignoring %d trailing token(s)", n)
	}
	return out, nil
}

func successLabel(err error) string {
	if err != nil {
		return "false"
	}
	return "true"
}
