// Package gridkit is the validation slice of a data-grid UI component
// library for Go applications.
//
// GridKit does not render anything. The surrounding grid — rendering,
// event wiring, persistence, theming — lives in the host application and
// collaborates with the engine through two narrow interfaces: a data
// source supplying rows, columns, and row classification, and a
// presenter executing focus, scroll, and tooltip actions.
//
// The module is split into three packages:
//
//   - pkg/grid     – the collaborator contract plus an in-memory source
//   - pkg/rule     – declarative rules, built-in evaluation, registries
//   - pkg/validate – sessions, the dataset walker, and the error map
//
// Basic Usage:
//
//	rules, err := rule.ParseSet(configYAML)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v, err := validate.New(src, validate.WithRules(rules))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Exhaustive validation of the full dataset.
//	if err := v.FullValidate(ctx, validate.AllRows(), nil); err != nil {
//		failures, _ := validate.AsFailureMap(err)
//		for field, cells := range failures {
//			// surface cells[i].Rule.Message for field
//			_ = field
//			_ = cells
//		}
//	}
package gridkit
