package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/avezina/mazehunt/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	solve := handlers.NewSolveHandler(a.logger, createRand())

	a.router.HandleFunc("POST /solve", solve.Solve)
	a.router.HandleFunc("POST /generate", solve.Generate)
	a.router.HandleFunc("/solve/ws", solve.ConnectWS)
}
