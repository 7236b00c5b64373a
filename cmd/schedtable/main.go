// Command schedtable simulates a CSV process file and prints the schedules.
//
// Usage:
//
//	schedtable [-algorithm FCFS|SJF|RR|PRIORITY|all] [-quantum 2] processes.csv
//
// Rows are pid,arrival,burst[,priority]; a header row is skipped.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"schedsim/config"
	"schedsim/internal/render"
	"schedsim/internal/requests"
	"schedsim/internal/schedulers"
)

func main() {
	algorithm := flag.String("algorithm", "all", "algorithm to run, or all to compare every algorithm")
	flag.Float64("quantum", 0, "round robin time quantum (default from config)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: schedtable [-algorithm NAME|all] [-quantum Q] processes.csv")
		os.Exit(2)
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalln(err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Sync()

	jobs, err := loadJobs(flag.Arg(0))
	if err != nil {
		logger.Fatal("failed to load processes", zap.String("file", flag.Arg(0)), zap.Error(err))
	}

	engine := schedulers.NewEngine(schedulers.EngineConfig{
		DefaultQuantum: cfg.RoundRobinTimeQuantum,
		MaxProcesses:   cfg.MaxProcesses,
		MaxSegments:    cfg.MaxSegments,
	}, logger)

	q := quantumFromFlags(flag.CommandLine, cfg.RoundRobinTimeQuantum)
	if err := run(os.Stdout, engine, jobs, *algorithm, q); err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}
}

// quantumFromFlags returns -quantum when it was given on the command line, even
// when it is not a valid quantum, and fallback otherwise.
func quantumFromFlags(flags *flag.FlagSet, fallback float64) float64 {
	quantum := fallback
	flags.Visit(func(f *flag.Flag) {
		if f.Name != "quantum" {
			return
		}
		if getter, ok := f.Value.(flag.Getter); ok {
			if v, ok := getter.Get().(float64); ok {
				quantum = v
			}
		}
	})
	return quantum
}

func run(w io.Writer, engine *schedulers.Engine, raw []requests.Job, algorithm string, quantum float64) error {
	if !strings.EqualFold(algorithm, "all") {
		response, err := engine.Simulate(raw, algorithm, quantum)
		if err != nil {
			return err
		}
		render.OutputTitle(w, strings.ToUpper(algorithm))
		render.OutputGantt(w, response.Gantt)
		render.OutputSchedule(w, response)
		return nil
	}

	compare, err := engine.Compare(raw, quantum)
	if err != nil {
		return err
	}
	for _, result := range compare.Results {
		render.OutputTitle(w, result.Algorithm)
		render.OutputGantt(w, result.Gantt)
		render.OutputSchedule(w, result.ScheduleResponse)
		_, _ = fmt.Fprintln(w)
	}
	render.OutputComparison(w, compare)
	return nil
}
