package themes

import (
	"context"
	"fmt"

	"github.com/dop251/goja"
)

// ScriptProvider serves themes authored as JavaScript snippets. Each script
// must evaluate to an object carrying the ten color fields, for example:
//
//	({background: "#ffffff", foreground: "#202020", ...})
//
// Scripts are evaluated once at construction; the provider is immutable and
// safe for concurrent resolvers afterwards.
type ScriptProvider struct {
	records map[string]map[string]string
}

// NewScriptProvider evaluates every script and captures its record. A script
// error or a record failing shape validation fails construction.
func NewScriptProvider(ctx context.Context, scripts map[string]string) (*ScriptProvider, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	vm := goja.New()
	records := make(map[string]map[string]string, len(scripts))
	for name, script := range scripts {
		rec, err := evalRecord(ctx, vm, script)
		if err != nil {
			return nil, fmt.Errorf("theme script %q: %w", name, err)
		}
		if _, err := FromRecord(rec); err != nil {
			return nil, fmt.Errorf("theme script %q: %w", name, err)
		}
		records[name] = rec
	}
	return &ScriptProvider{records: records}, nil
}

func (p *ScriptProvider) Theme(name string) (map[string]string, bool) {
	rec, ok := p.records[name]
	return rec, ok
}

func evalRecord(ctx context.Context, vm *goja.Runtime, script string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := vm.RunString(script)
	if err != nil {
		if interrupted, ok := err.(*goja.InterruptedError); ok {
			if cause := interrupted.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}

	exported, ok := val.Export().(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("script must evaluate to an object, got %T", val.Export())
	}
	rec := make(map[string]string, len(exported))
	for key, v := range exported {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string, got %T", key, v)
		}
		rec[key] = s
	}
	return rec, nil
}
