package classify

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
)

// Result is what one model produced. Each task of a run owns exactly one Result.
type Result struct {
	Model    string
	Training float64
	Testing  float64
	Report   string
	Err      error

	classifier Classifier
	scaler     *StandardScaler
}

// Predict predicts X with the fitted model, scaling X the way the model was trained.
func (r Result) Predict(X [][]float64) ([]float64, error) {
	if r.classifier == nil {
		return nil, errors.Wrap(errNotFitted, r.Model)
	}
	scaled, err := r.scaler.Transform(X)
	if err != nil {
		return nil, err
	}
	return r.classifier.Predict(scaled)
}

// Results are the outcomes of a run, in the order models were requested.
type Results []Result

// Get returns the result of a model.
func (rs Results) Get(model string) (Result, bool) {
	for _, r := range rs {
		if r.Model == model {
			return r, true
		}
	}
	return Result{}, false
}

// Predict predicts X with one of the fitted models.
func (rs Results) Predict(model string, X [][]float64) ([]float64, error) {
	r, ok := rs.Get(model)
	if !ok {
		return nil, errors.Wrap(ErrUnknownModel, model)
	}
	return r.Predict(X)
}

// Report formats every result as a comparison report.
func (rs Results) Report() string {
	b := new(bytes.Buffer)
	b.WriteString("== Classifiers Comparison Report ==\n\n")
	for _, r := range rs {
		b.WriteString(r.Model + "\n")
		if r.Err != nil {
			fmt.Fprintf(b, "  Error: %v\n\n", r.Err)
			continue
		}
		fmt.Fprintf(b, "  Training set score: %.3f\n", r.Training)
		fmt.Fprintf(b, "  Testing set score: %.3f\n", r.Testing)
		b.WriteString(r.Report)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Runner fits and scores a fixed list of models concurrently.
type Runner struct {
	registry    Registry
	models      []string
	concurrency int
	seed        int64
	testRatio   float64
	progress    bool
}

// RunnerOption configures a Runner.
type RunnerOption func(r *Runner)

// Models selects which registered models to run. By default all of them run.
func Models(names ...string) RunnerOption {
	return func(r *Runner) {
		r.models = names
	}
}

// Concurrency bounds how many models are fitted at once.
func Concurrency(n int) RunnerOption {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// Seed seeds the per-model train/test splits.
func Seed(seed int64) RunnerOption {
	return func(r *Runner) {
		r.seed = seed
	}
}

// TestRatio sets the share of rows held out for the testing score.
func TestRatio(ratio float64) RunnerOption {
	return func(r *Runner) {
		r.testRatio = ratio
	}
}

// Progress shows a progress bar while the models run.
func Progress(show bool) RunnerOption {
	return func(r *Runner) {
		r.progress = show
	}
}

// NewRunner creates a runner over a registry.
func NewRunner(registry Registry, options ...RunnerOption) *Runner {
	r := &Runner{
		registry:    registry,
		concurrency: runtime.NumCPU(),
		seed:        1,
		testRatio:   DefaultTestRatio,
	}
	for _, o := range options {
		o(r)
	}
	if len(r.models) == 0 {
		r.models = registry.Names()
	}
	if r.concurrency < 1 {
		r.concurrency = 1
	}
	return r
}

// Run scales X once, then fits every model on its own split of the scaled
// rows. Tasks share X and y read-only and each writes only its own Result, so
// the only synchronisation is the final wait. The first model error is
// returned along with all results.
func (r *Runner) Run(ctx context.Context, X [][]float64, y []float64) (Results, error) {
	if len(X) != len(y) {
		return nil, errors.Errorf("classify: %d rows but %d targets", len(X), len(y))
	}
	for _, name := range r.models {
		if _, ok := r.registry[name]; !ok {
			return nil, errors.Wrap(ErrUnknownModel, name)
		}
	}

	scaler := new(StandardScaler)
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		return nil, err
	}

	results := make(Results, len(r.models))
	var bar *pb.ProgressBar
	if r.progress {
		bar = pb.StartNew(len(r.models))
	}

	log.Printf("running %d models with %d goroutines\n", len(r.models), r.concurrency)

	var wg sync.WaitGroup
	sem := make(chan struct{}, r.concurrency)
	for i, name := range r.models {
		results[i].Model = name
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(idx int, name string) {
			defer func() {
				<-sem
				if bar != nil {
					bar.Increment()
				}
				wg.Done()
			}()
			rng := rand.New(rand.NewSource(r.seed + int64(idx)))
			results[idx] = r.fit(name, scaled, y, rng)
			results[idx].scaler = scaler
		}(i, name)
	}
	wg.Wait()
	if bar != nil {
		bar.Finish()
	}

	for _, res := range results {
		if res.Err != nil {
			return results, errors.Wrap(res.Err, res.Model)
		}
	}
	return results, nil
}

func (r *Runner) fit(name string, X [][]float64, y []float64, rng *rand.Rand) Result {
	res := Result{Model: name}

	clf, err := r.registry.New(name)
	if err != nil {
		res.Err = err
		return res
	}

	XTrain, XTest, yTrain, yTest := TrainTestSplit(X, y, r.testRatio, rng)
	if err := clf.Fit(XTrain, yTrain); err != nil {
		res.Err = err
		return res
	}
	if res.Training, err = Score(clf, XTrain, yTrain); err != nil {
		res.Err = err
		return res
	}
	if len(XTest) > 0 {
		if res.Testing, err = Score(clf, XTest, yTest); err != nil {
			res.Err = err
			return res
		}
		predicted, err := clf.Predict(XTest)
		if err != nil {
			res.Err = err
			return res
		}
		res.Report = ClassificationReport(yTest, predicted)
	}
	res.classifier = clf
	return res
}
