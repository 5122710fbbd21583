/*
mazehunt solves multi-target maze puzzles from the command line.

With no flags it reads maze text from the file given as the first
argument, or from standard input, and prints the optimal move sequence
and its cost. With -generate it emits a random maze instead.

Exit codes: 1 for malformed input, 2 for an unsolvable maze.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/avezina/mazehunt/internal/maze"
	"github.com/avezina/mazehunt/internal/mazegen"
	"github.com/avezina/mazehunt/internal/search"
)

var log = logrus.New()

var (
	heuristicName string
	verbose       bool

	generate bool
	width    int
	height   int
	targets  int
	mud      float64
	braid    float64
	seed     uint64
)

func init() {
	flag.StringVar(&heuristicName, "heuristic", "", "heuristic to use (max-manhattan, nearest-mst)")
	flag.BoolVar(&verbose, "v", false, "debug logging")

	flag.BoolVar(&generate, "generate", false, "emit a random maze instead of solving")
	flag.IntVar(&width, "width", 41, "generated maze width (odd)")
	flag.IntVar(&height, "height", 41, "generated maze height (odd)")
	flag.IntVar(&targets, "targets", 4, "generated target count")
	flag.Float64Var(&mud, "mud", 0.1, "generated mud chance per floor cell")
	flag.Float64Var(&braid, "braid", 0.2, "chance to open alternate routes")
	flag.Uint64Var(&seed, "seed", 1, "generator seed")
}

func readRows(r io.Reader) []string {
	var rows []string
	for scanner := bufio.NewScanner(r); scanner.Scan(); {
		if line := scanner.Text(); line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

func runGenerate() {
	rows, err := mazegen.Generate(mazegen.Params{
		Width:     width,
		Height:    height,
		Targets:   targets,
		MudChance: mud,
		Braid:     braid,
	}, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	for _, row := range rows {
		fmt.Println(row)
	}
}

func runSolve() {
	in := os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	problem, err := maze.Parse(readRows(in))
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	h, ok := search.ByName(heuristicName)
	if !ok {
		log.Errorf("unknown heuristic %q", heuristicName)
		os.Exit(1)
	}

	res := search.Run(problem, h)
	if !res.Found {
		fmt.Println("unsolvable")
		os.Exit(2)
	}

	score := problem.Replay(res.Moves)
	if !score.Valid || score.Cost != res.Cost {
		log.Errorf("solution failed verification: valid=%v cost=%d reported=%d",
			score.Valid, score.Cost, res.Cost)
		os.Exit(1)
	}

	fmt.Printf("%s\ncost=%d expanded=%d\n", maze.FormatMoves(res.Moves), score.Cost, res.Expanded)
}

func main() {
	flag.Parse()

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		maze.Log.SetLevel(logrus.DebugLevel)
		search.Log.SetLevel(logrus.DebugLevel)
		mazegen.Log.SetLevel(logrus.DebugLevel)
	}

	if generate {
		runGenerate()
		return
	}
	runSolve()
}
