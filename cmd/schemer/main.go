package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/go-errors/errors"
	"github.com/hscells/schemer"
	"github.com/hscells/schemer/classify"
	"github.com/hscells/schemer/config"
	"github.com/hscells/schemer/output"
)

var (
	name    = "schemer"
	version = "19.Oct.2026"
	author  = "Harry Scells"
)

type args struct {
	File            string   `help:"delimited file to encode" arg:"-f"`
	Target          string   `help:"target column; rows with an empty target are predicted" arg:"-t"`
	Config          string   `help:"properties file with loader, encoder and classifier settings" arg:"-c"`
	Output          string   `help:"file to write the encoded training matrix to (default stdout)" arg:"-o"`
	TestOutput      string   `help:"file to write the encoded test matrix to"`
	JSON            bool     `help:"output the matrix as JSON instead of CSV"`
	Classify        bool     `help:"compare the registered classifiers and print a report"`
	Models          []string `help:"classifiers to compare (default all)"`
	Predict         string   `help:"model used to predict the test rows"`
	ID              string   `help:"column identifying each predicted row"`
	Predictions     string   `help:"file to write predictions to"`
	TestCategorical bool     `help:"one-hot encode the test rows with the training vocabulary"`
	Drop            []string `help:"columns to drop; a categorical column drops its whole one-hot block"`
	Keep            []string `help:"columns to keep, dropping all others"`
	DropNull        bool     `help:"drop columns holding NaN values"`
	Progress        bool     `help:"show a progress bar while classifiers run"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

func main() {
	var args args
	arg.MustParse(&args)

	c := config.Default()
	if len(args.Config) > 0 {
		var err error
		c, err = config.Load(args.Config)
		if err != nil {
			log.Fatalln(errors.Wrap(err, 0).ErrorStack())
		}
	}

	// Command line arguments take precedence over the configuration file.
	if len(args.File) > 0 {
		c.File = args.File
	}
	if len(args.Target) > 0 {
		c.Target = args.Target
	}
	if len(args.Models) > 0 {
		c.Models = args.Models
	}
	if len(args.Predict) > 0 {
		c.PredictModel = args.Predict
	}
	if len(args.ID) > 0 {
		c.PredictID = args.ID
	}
	if len(args.Predictions) > 0 {
		c.PredictOutput = args.Predictions
	}
	if args.TestCategorical {
		c.CategoricalTestEncoding = true
	}
	if len(args.Drop) > 0 {
		c.Drop = args.Drop
	}
	if len(args.Keep) > 0 {
		c.Keep = args.Keep
	}
	if args.DropNull {
		c.DropNull = true
	}
	if len(c.File) == 0 || len(c.Target) == 0 {
		log.Fatalln("a file and a target column must be given, either as arguments or in the configuration")
	}

	formatters := []output.MatrixFormatter{output.CsvMatrixFormatter, output.CsvTestFormatter}
	if args.JSON {
		formatters = []output.MatrixFormatter{output.JsonMatrixFormatter}
	}

	components := []func() interface{}{
		schemer.Loading(c.LoaderOptions()...),
		schemer.Encoding(c.BuildOptions()...),
		schemer.Columns(c.Columns()),
		schemer.MatrixOutput(formatters...),
	}
	if args.Classify || len(c.PredictModel) > 0 {
		opts := append(c.RunnerOptions(), classify.Progress(args.Progress))
		if len(c.PredictModel) > 0 && len(c.Models) > 0 && !contains(c.Models, c.PredictModel) {
			opts = append(opts, classify.Models(append(c.Models, c.PredictModel)...))
		}
		components = append(components, schemer.Classification(classify.NewRunner(classify.NewDefaultRegistry(), opts...)))
	}
	if len(c.PredictModel) > 0 {
		if len(c.PredictID) == 0 {
			log.Fatalln("an id column is required to write predictions")
		}
		components = append(components, schemer.Prediction(c.PredictModel, c.PredictID, c.PredictOutput))
	}

	p := schemer.NewPipeline(c.File, c.Target, components...)
	results := make(chan schemer.PipelineResult)
	go p.Execute(context.Background(), results)

	for result := range results {
		switch result.Type {
		case schemer.Matrix:
			if err := write(args.Output, result.Outputs[0]); err != nil {
				log.Fatalln(errors.Wrap(err, 0).ErrorStack())
			}
			if len(args.TestOutput) > 0 && len(result.Outputs) > 1 {
				if err := write(args.TestOutput, result.Outputs[1]); err != nil {
					log.Fatalln(errors.Wrap(err, 0).ErrorStack())
				}
			}
		case schemer.Report:
			if args.Classify {
				fmt.Fprint(os.Stderr, result.Report)
			}
		case schemer.Predictions:
			if len(c.PredictOutput) == 0 {
				for i, id := range result.IDs {
					fmt.Printf("%s,%v\n", id, result.Predictions[i])
				}
			}
		case schemer.Error:
			log.Fatalln(errors.Wrap(result.Error, 0).ErrorStack())
		case schemer.Done:
			log.Println("done")
		}
	}
}

func write(path, s string) error {
	if len(path) == 0 {
		_, err := os.Stdout.WriteString(s)
		return err
	}
	return ioutil.WriteFile(path, []byte(s), 0644)
}

func contains(a []string, s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}
