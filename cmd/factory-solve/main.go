// Command factory-solve reads a factory problem on standard input and
// writes its production schedule (or infeasibility diagnostics) as
// JSON on standard output.
package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/foundry-sim/factoryflow/factory"
	"github.com/foundry-sim/factoryflow/internal/obslog"
)

func main() {
	log := obslog.New("factory-solve")
	start := time.Now()

	p, err := factory.Parse(os.Stdin)
	if err != nil {
		log.Error("parse failed", "error", err.Error())
		os.Exit(1)
	}
	obslog.Stage(log, "parsed", start)

	res, err := factory.Solve(p, factory.Options{})
	if err != nil {
		log.Error("solve failed", "error", err.Error())
		os.Exit(1)
	}
	obslog.Stage(log, res.Status, start)

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(res); err != nil {
		log.Error("emit failed", "error", err.Error())
		os.Exit(1)
	}
	obslog.Stage(log, "emitted", start)
}
