package factory

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// ModuleLoadout is a recipe's speed/productivity module configuration.
// Speed multiplies effective crafting rate; Prod multiplies output
// quantities when Options.ApplyProductivity is set.
type ModuleLoadout struct {
	Speed float64 `json:"speed"`
	Prod  float64 `json:"prod"`
}

// Input is the JSON envelope a factory problem arrives in.
type Input struct {
	Target          targetInput             `json:"target"`
	Machines        map[string]machineInput `json:"machines"`
	Recipes         map[string]recipeInput  `json:"recipes"`
	RawSupplyPerMin map[string]float64      `json:"raw_supply_per_min"`
}

type targetInput struct {
	Item       string  `json:"item"`
	RatePerMin float64 `json:"rate_per_min"`
}

type machineInput struct {
	CraftsPerMin float64 `json:"crafts_per_min"`
	MaxMachines  *int    `json:"max_machines"`
}

type recipeInput struct {
	Machine string             `json:"machine"`
	TimeS   float64            `json:"time_s"`
	In      map[string]float64 `json:"in"`
	Out     map[string]float64 `json:"out"`
	Modules *ModuleLoadout     `json:"modules"`
}

// machineClass is a machine class addressed by arena index.
type machineClass struct {
	Name         string
	CraftsPerMin float64
	MaxMachines  *int // nil = unbounded
}

// recipe is a recipe addressed by arena index; In/Out map item arena
// indices to units-per-craft, and EffCraftsPerMin is the precomputed
// effective crafts-per-minute rate of one machine running this recipe.
type recipe struct {
	Name            string
	MachineIdx      int
	TimeS           float64
	In              map[int]float64
	Out             map[int]float64
	Speed           float64
	Prod            float64
	EffCraftsPerMin float64
}

// Problem is a parsed factory instance. Items, Machines, and Recipes
// are flat arenas addressed by int index; itemIndex/machineIndex are
// the name↔index bimaps, kept here at the I/O boundary and never
// threaded into the LP model builder.
type Problem struct {
	Items        []string
	itemIndex    map[string]int
	Machines     []machineClass
	machineIndex map[string]int
	Recipes      []recipe

	TargetItemIdx int
	TargetRate    float64

	// RawCapByItem holds only items present in raw_supply_per_min,
	// keyed by their arena index.
	RawCapByItem map[int]float64
}

// ItemName reports the name of item i.
func (p *Problem) ItemName(i int) string { return p.Items[i] }

// MachineName reports the name of machine class m.
func (p *Problem) MachineName(m int) string { return p.Machines[m].Name }

// Parse reads a factory Input document from r and validates it,
// returning an arena-indexed Problem.
func Parse(r io.Reader) (*Problem, error) {
	var in Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("factory: decode input: %w", err)
	}

	if in.Target.RatePerMin < 0 {
		return nil, fmt.Errorf("factory: target rate_per_min: %w", ErrNegativeCoefficient)
	}

	items := map[string]struct{}{in.Target.Item: {}}
	for item, cap := range in.RawSupplyPerMin {
		if cap < 0 {
			return nil, fmt.Errorf("factory: raw_supply_per_min[%s]: %w", item, ErrNegativeCoefficient)
		}
		items[item] = struct{}{}
	}
	for name, r := range in.Recipes {
		if _, ok := in.Machines[r.Machine]; !ok {
			return nil, fmt.Errorf("factory: recipe %s: %w", name, ErrUnknownMachine)
		}
		if r.TimeS <= 0 {
			return nil, fmt.Errorf("factory: recipe %s: %w", name, ErrNonPositiveTime)
		}
		for item, q := range r.In {
			if q < 0 {
				return nil, fmt.Errorf("factory: recipe %s in[%s]: %w", name, item, ErrNegativeCoefficient)
			}
			items[item] = struct{}{}
		}
		for item, q := range r.Out {
			if q < 0 {
				return nil, fmt.Errorf("factory: recipe %s out[%s]: %w", name, item, ErrNegativeCoefficient)
			}
			items[item] = struct{}{}
		}
	}

	// Sort item/machine/recipe identifiers lexicographically so arena
	// indices (and therefore solver iteration order) are pinned across
	// runs of the same input.
	itemNames := make([]string, 0, len(items))
	for item := range items {
		itemNames = append(itemNames, item)
	}
	sort.Strings(itemNames)
	itemIndex := make(map[string]int, len(itemNames))
	for i, name := range itemNames {
		itemIndex[name] = i
	}

	machineNames := make([]string, 0, len(in.Machines))
	for name := range in.Machines {
		machineNames = append(machineNames, name)
	}
	sort.Strings(machineNames)
	machineIndex := make(map[string]int, len(machineNames))
	machines := make([]machineClass, len(machineNames))
	for i, name := range machineNames {
		mi := in.Machines[name]
		if mi.CraftsPerMin <= 0 {
			return nil, fmt.Errorf("factory: machine %s: %w", name, ErrNonPositiveCraftsPerMin)
		}
		if mi.MaxMachines != nil && *mi.MaxMachines < 0 {
			return nil, fmt.Errorf("factory: machine %s: %w", name, ErrNegativeMaxMachines)
		}
		machineIndex[name] = i
		machines[i] = machineClass{Name: name, CraftsPerMin: mi.CraftsPerMin, MaxMachines: mi.MaxMachines}
	}

	recipeNames := make([]string, 0, len(in.Recipes))
	for name := range in.Recipes {
		recipeNames = append(recipeNames, name)
	}
	sort.Strings(recipeNames)

	targetProduced := false
	recipes := make([]recipe, len(recipeNames))
	for i, name := range recipeNames {
		ri := in.Recipes[name]
		mIdx := machineIndex[ri.Machine]
		speed, prod := 0.0, 0.0
		if ri.Modules != nil {
			speed, prod = ri.Modules.Speed, ri.Modules.Prod
			if speed < -1 || prod < 0 {
				return nil, fmt.Errorf("factory: recipe %s: %w", name, ErrInvalidModuleLoadout)
			}
		}
		eff := machines[mIdx].CraftsPerMin * (1 + speed) / ri.TimeS

		inMap := make(map[int]float64, len(ri.In))
		for item, q := range ri.In {
			inMap[itemIndex[item]] = q
		}
		outMap := make(map[int]float64, len(ri.Out))
		for item, q := range ri.Out {
			outMap[itemIndex[item]] = q
			if item == in.Target.Item && q > 0 {
				targetProduced = true
			}
		}

		recipes[i] = recipe{
			Name:            name,
			MachineIdx:      mIdx,
			TimeS:           ri.TimeS,
			In:              inMap,
			Out:             outMap,
			Speed:           speed,
			Prod:            prod,
			EffCraftsPerMin: eff,
		}
	}
	if !targetProduced {
		return nil, fmt.Errorf("factory: target %s: %w", in.Target.Item, ErrTargetNotProduced)
	}

	rawCap := make(map[int]float64, len(in.RawSupplyPerMin))
	for item, cap := range in.RawSupplyPerMin {
		rawCap[itemIndex[item]] = cap
	}

	return &Problem{
		Items:         itemNames,
		itemIndex:     itemIndex,
		Machines:      machines,
		machineIndex:  machineIndex,
		Recipes:       recipes,
		TargetItemIdx: itemIndex[in.Target.Item],
		TargetRate:    in.Target.RatePerMin,
		RawCapByItem:  rawCap,
	}, nil
}
