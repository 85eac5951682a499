// Package bench is the benchmark harness driving both solvers over a
// declared suite of fixtures: a YAML suite-configuration file, optionally
// validated against a JSON Schema, fixture discovery via glob patterns,
// timed execution of each (fixture, algorithm-or-strategy) pair, and a
// zap-logged result record per run, tagged with a ulid run id. It is
// purely a driver-layer consumer of package muops/pgsolve.
package bench
