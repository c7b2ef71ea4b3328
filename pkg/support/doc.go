// ABOUTME: Codec support oracle package
// ABOUTME: Answers "can this environment decode extension X?" for the resolver
// Package support provides codec-support oracles consumed by the format resolver.
//
// An Oracle is a synchronous, side-effect free capability query. Implementations:
//   - Func: wrap a plain function
//   - Static: a fixed set decided up front
//   - Snapshot: a replaceable set, typically fed by a Reporter
//
// Reporter is a websocket endpoint a browser-side sketch connects to in order to
// report what its media stack can play (e.g. the results of canPlayType).
//
// Example:
//
//	snap := support.NewSnapshot()
//	reporter := support.NewReporter(snap)
//	http.Handle("/capabilities", reporter)
//	resolver := format.NewResolver(snap)
package support
