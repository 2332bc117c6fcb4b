// Command factory-verify reloads a factory input/output pair and
// re-checks every constraint independent of the solver that produced
// it. Exit 0 on pass, 2 on any violation.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/foundry-sim/factoryflow/factory"
	"github.com/foundry-sim/factoryflow/internal/obslog"
	"github.com/foundry-sim/factoryflow/verify"
)

func main() {
	log := obslog.New("factory-verify")

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: factory-verify <input.json> <output.json>")
		os.Exit(1)
	}

	inFile, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer inFile.Close()

	p, err := factory.Parse(inFile)
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

	var res factory.Result
	if err := json.NewDecoder(outFile).Decode(&res); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := verify.Factory(p, res); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Error("violation", "error", err.Error())
		os.Exit(2)
	}
	log.Info("pass")
}
