// Command perft drives [chego.Position.Perft] and [chego.Position.Divide]
// from the command line: the standard way to validate a move generator
// against known leaf-node counts and to bisect a discrepancy down to the
// exact divergent root move.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/treepeck/chego"
	"github.com/treepeck/chego/config"
)

func main() {
	fen := flag.String("fen", chego.InitialPos, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move leaf counts instead of just the total")
	parallel := flag.Bool("parallel", false, "split the root moves across goroutines (divide mode only)")
	cpuProfile := flag.Bool("cpuprofile", false, "record a CPU profile to ./cpu.pprof")
	configPath := flag.String("config", "", "path to a TOML config file overriding engine defaults")

	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("perft: %v", err)
		}
	}
	chego.InitTables()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	p, err := chego.NewPosition(*fen)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	start := time.Now()

	if *divide {
		runDivide(p, *depth, *parallel)
	} else {
		nodes := p.Perft(*depth)
		fmt.Printf("nodes: %d\n", nodes)
	}

	fmt.Printf("elapsed: %s\n", time.Since(start))
}

// runDivide prints one "move: count" line per legal root move, optionally
// fanning the per-move subtrees out across goroutines with errgroup since
// each root move's subtree is an independent clone of p.
func runDivide(p *chego.Position, depth int, parallel bool) {
	var list chego.MoveList
	p.GenerateMoves(&list)

	counts := make(map[chego.Move]uint64, list.Count)

	if !parallel || depth <= 1 {
		for i := 0; i < list.Count; i++ {
			m := list.Moves[i]
			p.MakeMove(m)
			if depth <= 1 {
				counts[m] = 1
			} else {
				counts[m] = p.Perft(depth - 1)
			}
			p.UndoMove()
		}
	} else {
		var g errgroup.Group
		results := make([]uint64, list.Count)
		for i := 0; i < list.Count; i++ {
			i := i
			clone := p.Clone()
			clone.MakeMove(list.Moves[i])
			g.Go(func() error {
				results[i] = clone.Perft(depth - 1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Fatalf("perft: %v", err)
		}
		for i := 0; i < list.Count; i++ {
			counts[list.Moves[i]] = results[i]
		}
	}

	moves := make([]chego.Move, 0, len(counts))
	var total uint64
	for m, n := range counts {
		moves = append(moves, m)
		total += n
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })

	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, counts[m])
	}
	fmt.Printf("total: %d\n", total)
}
