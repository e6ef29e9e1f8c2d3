package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/relokit/relokit/pkg/relokit"
	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/regs"
)

// Scenario describes a world to build: the memory backend, the tracked
// allocations and their contents, the recorded escape slots, the live
// threads with their saved registers, and the moves to execute.
//
// Addresses and register values are strings so scenarios can use the usual
// hex notation; strconv.ParseUint with base 0 accepts 0x-prefixed and
// decimal forms.
type Scenario struct {
	Memory struct {
		// Kind selects the backend: "sim" (default) or "arena".
		Kind string `mapstructure:"kind"`
		// Base and Size configure the arena backend.
		Base string `mapstructure:"base"`
		Size uint64 `mapstructure:"size"`
	} `mapstructure:"memory"`

	Allocations []struct {
		Base   string `mapstructure:"base"`
		Length uint64 `mapstructure:"length"`
		// Fill seeds the range with a repeating byte value.
		Fill uint8 `mapstructure:"fill"`
	} `mapstructure:"allocations"`

	Escapes []struct {
		// Allocation is the base of the owning allocation.
		Allocation string `mapstructure:"allocation"`
		Slot       string `mapstructure:"slot"`
		Value      string `mapstructure:"value"`
	} `mapstructure:"escapes"`

	Threads []struct {
		Name      string            `mapstructure:"name"`
		Registers map[string]string `mapstructure:"registers"`
	} `mapstructure:"threads"`

	Moves []struct {
		Source string `mapstructure:"source"`
		Target string `mapstructure:"target"`
	} `mapstructure:"moves"`
}

// loadScenario reads a scenario file. RELOCCTL_* environment variables
// override same-named keys.
func loadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("RELOCCTL")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := v.Unmarshal(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &sc, nil
}

func parseAddr(s string) (types.Addr, error) {
	if s == "" {
		return 0, fmt.Errorf("empty address")
	}
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("address %q: %w", s, err)
	}
	return types.Addr(u), nil
}

// buildRuntime wires a Runtime from the scenario and seeds the world. The
// returned cleanup releases the arena when one was mapped.
func buildRuntime(sc *Scenario, log *zap.Logger) (*relokit.Runtime, func() error, error) {
	cleanup := func() error { return nil }

	var memory types.Memory
	switch sc.Memory.Kind {
	case "", "sim":
		memory = relokit.NewSimMemory()
	case "arena":
		base, err := parseAddr(sc.Memory.Base)
		if err != nil {
			return nil, nil, fmt.Errorf("memory.base: %w", err)
		}
		memory, cleanup, err = relokit.NewArena(base, sc.Memory.Size)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("memory.kind %q: want sim or arena", sc.Memory.Kind)
	}

	rt := relokit.New(relokit.Options{Logger: log, Memory: memory})

	for _, a := range sc.Allocations {
		base, err := parseAddr(a.Base)
		if err != nil {
			return nil, nil, fmt.Errorf("allocation: %w", err)
		}
		if _, err := rt.Track(base, a.Length); err != nil {
			return nil, nil, err
		}
		buf := make([]byte, a.Length)
		for i := range buf {
			buf[i] = a.Fill
		}
		if err := rt.Memory().WriteBytes(base, buf); err != nil {
			return nil, nil, err
		}
	}

	for _, e := range sc.Escapes {
		owner, err := parseAddr(e.Allocation)
		if err != nil {
			return nil, nil, fmt.Errorf("escape: %w", err)
		}
		slot, err := parseAddr(e.Slot)
		if err != nil {
			return nil, nil, fmt.Errorf("escape: %w", err)
		}
		value, err := parseAddr(e.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("escape: %w", err)
		}
		if err := rt.RecordEscape(owner, slot); err != nil {
			return nil, nil, err
		}
		if err := rt.Memory().StoreWord(slot, uint64(value)); err != nil {
			return nil, nil, err
		}
	}

	for _, th := range sc.Threads {
		sim := rt.SimScheduler()
		if sim == nil {
			return nil, nil, fmt.Errorf("threads need the simulated scheduler")
		}
		t := sim.AddThread(th.Name)
		for name, raw := range th.Registers {
			n, err := regs.ParseName(name)
			if err != nil {
				return nil, nil, fmt.Errorf("thread %s: %w", th.Name, err)
			}
			v, err := parseAddr(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("thread %s %s: %w", th.Name, name, err)
			}
			if err := t.SetRegister(n, uint64(v)); err != nil {
				return nil, nil, err
			}
		}
	}

	return rt, cleanup, nil
}
