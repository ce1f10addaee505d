package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"TreeSearch/knapsack"
	"TreeSearch/search"
	"TreeSearch/utils"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

func main() {
	def := search.DefaultConfig()
	var (
		taskSize    = flag.Int("n", def.TaskSize, "Task size (number of items)")
		elementSize = flag.Int("m", def.ElementSize, "Element size in bits")
		processors  = flag.Int("p", def.Processors, "Processor count (ordinal partitions)")
		iterations  = flag.Int("i", def.Iterations, "Iteration count")
		relative    = flag.Int("r", knapsack.RandomTarget, "Relative target weight, %; -1 draws it at random")
		optimized   = flag.Bool("optimized", false, "Walk the tree incrementally instead of decoding every ordinal")
		seed        = flag.Int64("seed", def.Seed, "Base RNG seed")
		outPath     = flag.String("out", "", "Append per-partition results to this CSV file")
		keep        = flag.Bool("keep", false, "Keep every solution and report the solution log size")
		progress    = flag.Bool("progress", false, "Show a progress bar on stderr")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		fail("invalid argument: %s", flag.Arg(0))
	}

	cfg := search.Config{
		TaskSize:       *taskSize,
		ElementSize:    *elementSize,
		Processors:     *processors,
		Iterations:     *iterations,
		RelativeTarget: *relative,
		Optimized:      *optimized,
		KeepSolutions:  *keep,
		Seed:           *seed,
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	printHeader(cfg)

	exp, err := search.NewExperiment(cfg, search.WithLogger(search.NewTextLogger(level)))
	if err != nil {
		fail("failed to build experiment: %v", err)
	}
	defer exp.Close()
	fmt.Printf("Offset table: %s in %d levels\n\n", humanize.IBytes(uint64(exp.Table().MemReport().TotalBytes)), exp.Table().Depth()+1)

	var out *utils.CSVAppender
	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fail("failed to create output directory: %v", err)
		}
		out = utils.NewCSVAppender(*outPath, []string{
			"n", "m", "mode", "seed", "iter", "relw", "rank", "nodes", "solutions", "elapsed_ns",
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var bar *progressbar.ProgressBar
	if *progress {
		bar = progressbar.NewOptions(cfg.Iterations,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("iterations"),
			progressbar.OptionShowCount(),
		)
	}

	printTableHead(cfg.Processors)
	var totalNodes, totalSolutions int64
	started := time.Now()
	err = exp.Run(ctx, func(it search.Iteration) error {
		printRow(it)
		totalNodes += it.Nodes()
		totalSolutions += it.SolutionCount()
		if it.Solutions != nil {
			fmt.Printf("        kept %d solutions, %s\n", it.Solutions.Len(), humanize.IBytes(uint64(it.Solutions.MemReport().TotalBytes)))
		}
		if out != nil {
			for _, res := range it.Results {
				if err := out.Append(csvRow(cfg, it, res)); err != nil {
					return err
				}
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
		return nil
	})
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nInterrupted.")
	} else if err != nil {
		fail("experiment failed: %v", err)
	}

	fmt.Printf("\nNodes visited: %s; solutions: %s; wall time: %s\n",
		humanize.Comma(totalNodes), humanize.Comma(totalSolutions), time.Since(started).Round(time.Millisecond))
}

func printHeader(cfg search.Config) {
	fmt.Print("=== EXACT ALGORITHMS FOR THE KNAPSACK PROBLEM ===\n" +
		"======== ALGORITHM #2: TREE SEARCH ==============\n\n")

	relative := "random"
	if cfg.RelativeTarget != knapsack.RandomTarget {
		relative = strconv.Itoa(cfg.RelativeTarget)
	}
	fmt.Printf("Experiment parameters:\n"+
		"---> Task size:       %d;\n"+
		"---> Element size:    %d;\n"+
		"---> Processor Count: %d;\n"+
		"---> Iteration Count: %d;\n"+
		"---> Relative target weight, %%: %s;\n"+
		"---> Traversal:       %s;\n"+
		"---> Seed:            %d;\n"+
		"---> Experiment Date: %s;\n",
		cfg.TaskSize, cfg.ElementSize, cfg.Processors, cfg.Iterations,
		relative, cfg.Mode(), cfg.Seed, time.Now().Format("02-01-2006"))
}

func printTableHead(processors int) {
	var sb strings.Builder
	sb.WriteString("ITER   |RELW, %|Nodes        |Sols   |")
	sb.WriteString(strings.Repeat("Time,ms|", processors))
	sb.WriteString("\n-------x-------x-------------x-------x")
	sb.WriteString(strings.Repeat("-------x", processors))
	fmt.Println(sb.String())
}

func printRow(it search.Iteration) {
	cells := utils.Map(it.Results, func(r search.Result) string {
		return fmt.Sprintf("%6d| ", r.Elapsed.Milliseconds())
	})
	fmt.Printf("I:%5d| %6d| %12s| %6d| %s\n",
		it.Index, it.Relative, humanize.Comma(it.Nodes()), it.SolutionCount(), strings.Join(cells, ""))
}

func csvRow(cfg search.Config, it search.Iteration, res search.Result) []string {
	return []string{
		strconv.Itoa(cfg.TaskSize),
		strconv.Itoa(cfg.ElementSize),
		cfg.Mode().String(),
		strconv.FormatInt(cfg.Seed, 10),
		strconv.Itoa(it.Index),
		strconv.Itoa(it.Relative),
		strconv.Itoa(res.Rank),
		strconv.FormatInt(res.Nodes, 10),
		strconv.FormatInt(res.Solutions, 10),
		strconv.FormatInt(res.Elapsed.Nanoseconds(), 10),
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
