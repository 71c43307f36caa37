package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/stats"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
			os.Exit(1)
		}
	}()
	os.Exit(run())
}

func run() int {
	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed))
	log.Infof("uno session starting, seed %d\n", seed)

	terminal := ui.NewTerminal(os.Stdin, color.Stdout)
	terminal.Println(msg.Message.Welcome())

	seats := player.CreateSeats(consts.HumanName, consts.ComputerNames, terminal, rng)
	names := make([]string, 0, len(seats))
	for _, seat := range seats {
		names = append(names, seat.Name())
	}
	recorder := stats.NewRecorder(names)
	bus := event.NewBus()
	bus.Subscribe(ui.NewView(terminal))
	bus.Subscribe(recorder)

	g, err := game.New(seats, game.WithRand(rng), game.WithBus(bus))
	if err != nil {
		log.Error(err)
		return 1
	}
	if err = g.Start(); err != nil {
		log.Error(err)
		return 1
	}
	winner, err := g.Run()

	terminal.Println()
	terminal.Printlns(recorder.Summary())
	log.Infof("session tally %s\n", string(json.Marshal(recorder.Tallies())))

	switch {
	case err == nil:
		terminal.Println(msg.Message.GameOver())
		log.Infof("session finished, %s won\n", winner.Name())
		return 0
	case errors.Is(err, consts.ErrorsInputClosed):
		terminal.Println(msg.Message.Interrupted())
		log.Info("input closed, session ended without a winner")
		return 0
	default:
		log.Error(err)
		return 1
	}
}
