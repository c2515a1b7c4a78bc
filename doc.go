// Package pavlog provides hierarchical, level-filtered logging without
// committing to an output sink.
//
// Key features
//   - Named loggers: colon separated names ("app:db:pool"), memoized per
//     Registry so every lookup of a name returns the same *Logger
//   - Bubbling: events from a child reach its own listeners, then its
//     parent's, then every ancestor's up to the root
//   - Listeners registered with a minimum level; delivery is synchronous and
//     a listener error is returned from the emitting call
//   - Template messages: "user {id} logged in" rendered against the details
//     mapping, with the template and every detail kept in the event data
//   - Error events carrying err, message and stack
//   - Listeners for console (zerolog ConsoleWriter), JSON lines, rolling
//     files (lumberjack) and Prometheus counters, plus net/http middleware
//
// Typical usage
//
//	log := pavlog.MustNew("app")
//	if err := log.UseConsole(pavlog.DebugLevel); err != nil { panic(err) }
//
//	db := log.MustChild("db")
//	_ = db.Info("connected to {host}", pavlog.Fields{"host": host})
//	_ = db.Error(err)
package pavlog
