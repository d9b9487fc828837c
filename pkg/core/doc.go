// Package core defines the shared language of the drills program.
//
// This package contains:
//   - Demo entities (Demo, Env, RunFunc)
//   - Run bookkeeping (Run, DemoRun and their statuses)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
