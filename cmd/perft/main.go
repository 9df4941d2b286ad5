// Command perft walks the move generation tree of strictly legal moves to a
// given depth and counts the visited leaf nodes.  The resulting count is
// compared against predetermined values to validate the move generator.
//
// See https://www.chessprogramming.org/Perft_Results
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/tomatochess/tomato"
)

var log = logging.MustGetLogger("perft")

func main() {
	fen := flag.String("fen", tomato.StartingBoard, "Position to run the perft from")
	depth := flag.Uint64("depth", 2, "Performance test depth")
	divide := flag.Bool("divide", false, "Print per-root-move subtree counts")
	cpuprofile := flag.Bool("cpuprofile", false, "Write a cpu profile")
	memprofile := flag.Bool("memprofile", false, "Write a memory profile")

	flag.Parse()

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memprofile {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	moveAPI := tomato.NewMoveAPI(*fen)

	if *divide {
		for _, line := range moveAPI.PerftDivide(*depth) {
			log.Info(line)
		}
		return
	}

	nodes, elapsed, pseudoGen := tomato.TimedPerft(moveAPI, *depth)

	fmt.Printf("All:%v, PseudoGen:%v\n", elapsed.Seconds(), pseudoGen.Seconds())
	fmt.Println(nodes)
}
