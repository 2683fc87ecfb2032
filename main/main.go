package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/billiards"
	"github.com/phil-mansfield/billiards/io"
)

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var config, exampleConfig string
	vars := map[string]*string{
		"Config":        &config,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&config, "Config", "",
		"Configuration file for a batch run. With no flags, commands are "+
			"read from stdin.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Batch'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "":
		interactiveMain()
	case "Config":
		wrap, err := io.ReadBatchConfig(config)
		if err != nil {
			log.Fatal(err.Error())
		}
		ec, err := io.ReadEnv()
		if err != nil {
			log.Fatal(err.Error())
		}
		if err = ec.Apply(wrap); err != nil {
			log.Fatal(err.Error())
		}
		batchMain(wrap)
	case "ExampleConfig":
		switch exampleConfig {
		case "Batch":
			fmt.Println(io.ExampleBatchFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Batch'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the single set flag, or "" if none are set.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", nil
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but billiards "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func interactiveMain() {
	ec, err := io.ReadEnv()
	if err != nil {
		log.Fatal(err.Error())
	}
	if ec.Seed < 0 || ec.Workers < 0 {
		log.Fatal("BILLIARDS_SEED and BILLIARDS_WORKERS must be non-negative.")
	}

	sh := &shell{
		s:       billiards.NewSession(nil),
		out:     os.Stdout,
		results: "results.txt",
		plotDir: ec.PlotDir,
		bins:    io.DefaultBatchWrapper().Output.Bins,
		seed:    uint64(ec.Seed),
		workers: ec.Workers,
	}
	if ec.Results != "" {
		sh.results = ec.Results
	}

	if err := sh.Run(os.Stdin); err != nil {
		log.Fatal(err.Error())
	}
	if sh.Plotted() {
		plt.Execute()
	}
}

func batchMain(wrap *io.BatchWrapper) {
	fg := batchSetupIO(&wrap.Output)
	defer fg.Close()

	log.Println("Running Batch main.")

	b, gen := &wrap.Border, &wrap.Generate
	s := billiards.NewSession(log.Default())
	if _, err := s.SetBorder(b.R1, b.R2, b.L); err != nil {
		log.Fatal(err.Error())
	}

	sh := &shell{
		s:       s,
		out:     os.Stdout,
		results: wrap.Output.Results,
		plotDir: wrap.Output.PlotDir,
		bins:    wrap.Output.Bins,
		seed:    uint64(gen.Seed),
		workers: gen.Workers,
	}

	res, err := s.Generate(billiards.Params{
		N: gen.N, Y0Mean: gen.Y0Mean, Y0Err: gen.Y0Err,
		Theta0Mean: gen.Theta0Mean, Theta0Err: gen.Theta0Err,
		Seed: sh.seed, Workers: sh.workers,
	})
	if err != nil {
		log.Fatal(err.Error())
	}
	fmt.Printf("Accepted: %d\nRejected: %d\n", res.Accepted, res.Rejected)

	if err := io.WriteResultsFile(sh.results, res.Y, res.Theta); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %d exit states to %s", res.Accepted, sh.results)

	if err := sh.printStatistics(); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
	}
	if sh.Plotted() {
		plt.Execute()
	}
}

func batchSetupIO(con *io.OutputConfig) *FileGroup {
	var err error
	fg := &FileGroup{}

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}
