// Command belts-verify reloads a belts input/output pair and
// re-checks every constraint independent of the solver that produced
// it. Exit 0 on pass, 2 on any violation.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/foundry-sim/factoryflow/belts"
	"github.com/foundry-sim/factoryflow/internal/obslog"
	"github.com/foundry-sim/factoryflow/verify"
)

func main() {
	log := obslog.New("belts-verify")

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: belts-verify <input.json> <output.json>")
		os.Exit(1)
	}

	inFile, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer inFile.Close()

	p, err := belts.Parse(inFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outFile, err := os.Open(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer outFile.Close()

	var res belts.Result
	if err := json.NewDecoder(outFile).Decode(&res); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := verify.Belts(p, res); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Error("violation", "error", err.Error())
		os.Exit(2)
	}
	log.Info("pass")
}
