package tuner

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"shardchess.dev/x/core/pkg/eval"
)

// Config holds one tuning run's hyperparameters.
type Config struct {
	Dataset  string // path to a labeled FEN dataset from internal/datagen
	PlotFile string // error-plot.html-style output path

	Epochs       int
	LearningRate float64
	Step         float64 // finite-difference step for the numeric gradient
}

// component selects which half of a tapered Score a gradient step
// perturbs.
type component int

const (
	mg component = iota
	eg
)

// Run loads cfg.Dataset, computes the dataset's optimal sigmoid scale,
// then runs cfg.Epochs rounds of numeric-gradient descent over every
// term in eval.TunableTerms, writing the mean-squared-error curve to
// cfg.PlotFile after every epoch.
func Run(cfg Config) error {
	dataset, err := LoadDataset(cfg.Dataset)
	if err != nil {
		return err
	}
	if len(dataset) == 0 {
		return fmt.Errorf("tuner: %s contains no labeled positions", cfg.Dataset)
	}

	fmt.Println("tuner: computing optimal K")
	k := dataset.ComputeK(5)
	fmt.Printf("tuner: K = %v\n", k)

	terms := eval.TunableTerms()

	var epochLabels []string
	var epochErrors []opts.LineData

	plot := func(epoch int, mse float64) {
		epochLabels = append(epochLabels, fmt.Sprintf("%d", epoch))
		epochErrors = append(epochErrors, opts.LineData{Value: mse})

		line := charts.NewLine()
		line.SetXAxis(epochLabels).AddSeries("MSE", epochErrors)

		f, err := os.Create(cfg.PlotFile)
		if err != nil {
			return
		}
		defer f.Close()
		_ = line.Render(f)
	}

	baseline := dataset.ComputeE(k)
	fmt.Printf("tuner: starting MSE = %v\n", baseline)
	plot(0, baseline)

	bar := progressbar.NewOptions(cfg.Epochs,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("epoch"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		for _, term := range terms {
			gradMG := numericGradient(dataset, k, term.Term, mg, cfg.Step)
			gradEG := numericGradient(dataset, k, term.Term, eg, cfg.Step)

			delta := eval.S(
				-eval.Eval(math.Round(cfg.LearningRate*gradMG)),
				-eval.Eval(math.Round(cfg.LearningRate*gradEG)),
			)
			*term.Term += delta
		}

		mse := dataset.ComputeE(k)
		plot(epoch, mse)
		fmt.Printf("tuner: epoch %d/%d MSE = %v\n", epoch, cfg.Epochs, mse)

		_ = bar.Add(1)
	}

	_ = bar.Close()
	return nil
}

// perturb adds delta to term's mg or eg half in place and returns a
// closure that restores the original value.
func perturb(term *eval.Score, which component, delta eval.Eval) func() {
	original := *term

	switch which {
	case mg:
		*term = eval.S(original.MG()+delta, original.EG())
	case eg:
		*term = eval.S(original.MG(), original.EG()+delta)
	}

	return func() { *term = original }
}

// numericGradient estimates dE/d(term) by central finite difference.
// This is the simplification the teacher's coefficient-traced analytic
// gradient (classical/tuner/gradient.go) avoided: recomputing the full
// dataset's static evaluation twice per term per epoch is much more
// expensive than an O(1)-per-sample coefficient update, but terms.go's
// weights were never laid out as a traced linear model the way the
// teacher's classical evaluator was.
func numericGradient(dataset Dataset, k float64, term *eval.Score, which component, step float64) float64 {
	delta := eval.Eval(math.Round(step))
	if delta == 0 {
		delta = 1
	}

	restore := perturb(term, which, delta)
	ePlus := dataset.ComputeE(k)
	restore()

	restore = perturb(term, which, -delta)
	eMinus := dataset.ComputeE(k)
	restore()

	return (ePlus - eMinus) / (2 * step)
}
