// Command play drives a full game between two configured agents, printing
// the board after every move until the game reaches a terminal state.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/tomatochess/tomato"
	"github.com/tomatochess/tomato/cli"
	"github.com/tomatochess/tomato/config"
)

var log = logging.MustGetLogger("play")

func main() {
	configPath := flag.String("config", "", "Path to a TOML configuration file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	setupLogging(cfg.LogLevel)

	white, err := newAgent(cfg.WhiteAgent, cfg.SearchDepth)
	if err != nil {
		log.Fatal(err)
	}
	black, err := newAgent(cfg.BlackAgent, cfg.SearchDepth)
	if err != nil {
		log.Fatal(err)
	}

	game := tomato.NewChessGameFromFEN(cfg.StartFEN)

	for ply := 0; ply < cfg.MaxMoves; ply++ {
		outcome := game.GetOutcome()
		if outcome.Text != tomato.OutcomeOngoing {
			log.Noticef("Game over: %s", outcome.Text)
			return
		}
		if game.IsThreefoldRepetition() {
			log.Notice("Game over: threefold repetition")
			return
		}

		agent := white
		if game.TurnColor() == tomato.ColorBlack {
			agent = black
		}

		m, ok := agent.ChooseMove(game)
		if !ok {
			log.Noticef("%s has no move", game.TurnColor())
			return
		}

		if reply := game.TryMove(m); reply.Kind == tomato.MessageError {
			log.Fatalf("agent produced an illegal move %s: %s", m, reply.Text)
		}

		log.Infof("%s plays %s", game.TurnColor().Opposite(), m)
		fmt.Println(cli.FormatState(game.GetState()))
	}

	log.Noticef("Move cap reached after %d plies", cfg.MaxMoves)
}

func newAgent(kind string, depth int) (tomato.Agent, error) {
	switch strings.ToLower(kind) {
	case "tomato":
		return tomato.NewTomatoAgent(depth), nil
	case "random":
		return tomato.NewRandomAgent(), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", kind)
}

func setupLogging(levelName string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))

	level, err := logging.LogLevel(levelName)
	if err != nil {
		level = logging.INFO
	}
	logging.SetLevel(level, "")
}
