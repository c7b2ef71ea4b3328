// ABOUTME: Audio format negotiation package
// ABOUTME: Picks the one asset path the playback environment can decode
// Package format resolves sketch asset paths against a codec-support oracle.
//
// A Resolver owns an ordered preference list of extensions (highest priority first)
// and answers two kinds of requests:
//   - ResolveSinglePath: one path, with or without a loadable extension
//   - ResolveFromCandidates: an ordered list of already-extensioned paths
//
// Resolution never fails. When nothing is playable the Resolution carries the best
// guess path with Supported set to false, so callers may still attempt the load.
//
// Example:
//
//	r := format.NewResolver(support.NewStatic(audio.OGG))
//	if err := r.SetPreferredFormats("ogg", "mp3"); err != nil {
//	    log.Fatal(err)
//	}
//	res := r.ResolveSinglePath("sounds/track.v2.mp3") // sounds/track.v2.ogg
package format
