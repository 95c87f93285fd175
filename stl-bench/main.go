package main

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
)

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/timtadh/getopt"
	"go.uber.org/zap"
)

import (
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/errors"
	"github.com/AniTigerSib/STL-Containers/logutil"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":   0,
	"version": 2,
	"opts":    3,
	"badint":  5,
	"badfile": 7,
	"config":  8,
	"run":     9,
}

var UsageMessage string = "stl-bench --help"
var ExtendedMessage string = `
stl-bench -- drive workloads over the containers and check them

Options
  -h, --help                view this message
  -c, --config=<path>       TOML workload file (see below)
  -n, --count=<int>         operations per workload (default 10000)
  --seed=<int>              random seed (default 1)
  --container=<name>        run only this container, may be repeated
                            (vector, list, rbtree, array, stack, queue)
  --pool=<int>              recycle blocks through a free list this deep
  --budget=<int>            cap live element slots
  --metrics                 print allocator counters after the run
  -v, --verbose             debug logging, including every allocation

Config file

  count = 10000
  seed = 1
  containers = ["vector", "list", "rbtree"]

  [alloc]
  name = "bench"
  pool = 64
  budget = 0
  metrics = true

Flags given on the command line override the file.
`

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

func main() {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hc:n:v",
		[]string{
			"help", "config=", "count=", "seed=", "container=",
			"pool=", "budget=", "metrics", "verbose",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected arguments %v\n", args)
		Usage(ErrorCodes["opts"])
	}

	configPath := ""
	verbose := false
	overrides := []func(*Config){}
	containers := []string{}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-c", "--config":
			configPath = AssertFile(oa.Arg())
		case "-n", "--count":
			n := ParseInt(oa.Arg())
			overrides = append(overrides, func(c *Config) { c.Count = n })
		case "--seed":
			seed := int64(ParseInt(oa.Arg()))
			overrides = append(overrides, func(c *Config) { c.Seed = seed })
		case "--container":
			containers = append(containers, strings.ToLower(oa.Arg()))
		case "--pool":
			pool := ParseInt(oa.Arg())
			overrides = append(overrides, func(c *Config) { c.Alloc.Pool = pool })
		case "--budget":
			budget := ParseInt(oa.Arg())
			overrides = append(overrides, func(c *Config) { c.Alloc.Budget = budget })
		case "--metrics":
			overrides = append(overrides, func(c *Config) { c.Alloc.Metrics = true })
		case "-v", "--verbose":
			verbose = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}

	log, err := NewLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ErrorCodes["run"])
	}
	defer log.Sync()
	logutil.SetGlobalLogger(log)

	cfg := DefaultConfig()
	if configPath != "" {
		cfg, err = LoadConfig(configPath, log)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			Usage(ErrorCodes["config"])
		}
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if len(containers) > 0 {
		cfg.Containers = containers
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["config"])
	}

	reg := prometheus.NewRegistry()
	if err := alloc.RegisterMetrics(reg); err != nil {
		log.Fatal("registering metrics", zap.Error(err))
	}

	results, err := RunGuarded(cfg, log)
	for _, res := range results {
		fmt.Printf("%-8s %10d ops %12v\n", res.Container, res.Ops, res.Elapsed)
	}
	if cfg.Alloc.Metrics {
		if err := PrintMetrics(os.Stdout, reg); err != nil {
			log.Error("gathering metrics", zap.Error(err))
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Stack(err))
		os.Exit(ErrorCodes["run"])
	}
}

// RunGuarded runs the workloads and turns an allocation failure panic,
// such as an exhausted budget, into an error.
func RunGuarded(cfg Config, log *zap.Logger) (results []Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.IsAllocation(e) {
				panic(r)
			}
			err = e
		}
	}()
	return Run(cfg, cfg.Alloc.Strategy(), log)
}
