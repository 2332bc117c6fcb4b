// Command belts-solve reads a belts problem on standard input and
// writes its flow solution (or infeasibility diagnostics) as JSON on
// standard output.
package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/foundry-sim/factoryflow/belts"
	"github.com/foundry-sim/factoryflow/internal/obslog"
)

func main() {
	log := obslog.New("belts-solve")
	start := time.Now()

	p, err := belts.Parse(os.Stdin)
	if err != nil {
		log.Error("parse failed", "error", err.Error())
		os.Exit(1)
	}
	obslog.Stage(log, "parsed", start)

	res, err := belts.Solve(p)
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
