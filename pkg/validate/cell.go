package validate

import (
	"context"
	"sync"

	"github.com/gridkit/gridkit/pkg/grid"
	"github.com/gridkit/gridkit/pkg/rule"
)

// checkCell runs every rule applicable to the trigger against one cell.
// Built-in rules evaluate synchronously in declaration order; custom
// validators are dispatched concurrently and their failures append as
// they complete. The returned CellError's Rules slice therefore holds
// synchronous failures first, asynchronous ones in completion order.
// Returns nil when every rule passes.
func (v *Validator) checkCell(ctx context.Context, trigger rule.Trigger, row grid.Row, col grid.Column, override *any) *CellError {
	declared := v.rules[col.Field]
	if len(declared) == 0 {
		return nil
	}

	value := row[col.Field]
	if override != nil {
		value = *override
	}

	var errorRules []rule.Failure
	results := make(chan rule.Failure)
	var wg sync.WaitGroup

	for _, r := range declared {
		if !r.AppliesTo(trigger) {
			continue
		}

		if !r.IsCustom() {
			if f := rule.Check(r, value); f != nil {
				errorRules = append(errorRules, *f)
			}
			continue
		}

		fn := r.Validator
		if fn == nil {
			var found bool
			fn, found = v.registry.Lookup(r.ValidatorName)
			if !found {
				// Configuration error: warn and treat the rule as
				// passing rather than blocking validation.
				v.logger.Warn("unknown custom validator",
					"validator", r.ValidatorName,
					"field", col.Field,
				)
				continue
			}
		}

		args := rule.Args{
			CellValue:   value,
			Rule:        r,
			Rules:       declared,
			Row:         row,
			RowIndex:    v.src.RowIndex(row),
			Column:      col,
			ColumnIndex: v.src.ColumnIndex(col),
			Field:       col.Field,
			Source:      v.src,
		}

		wg.Add(1)
		go func(r rule.Rule, fn rule.Func) {
			defer wg.Done()
			err := fn(ctx, args)
			if err == nil {
				return
			}
			msg := err.Error()
			if msg == "" {
				msg = r.ResolvedMessage()
			}
			results <- rule.Failure{Rule: r, Message: msg}
		}(r, fn)
	}

	go func() {
		wg.Wait()
		close(results)
	}()
	for f := range results {
		errorRules = append(errorRules, f)
	}

	if len(errorRules) == 0 {
		return nil
	}
	return &CellError{
		Row:    row,
		Column: col,
		Rule:   errorRules[0],
		Rules:  errorRules,
	}
}
