// Package commands defines the wealthcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - calc             Run one calculator from key=value arguments
//   - run              Run every calculation in a YAML or JSON request file
//   - compare-regimes  Compare income tax under the new and old regimes
//   - list             List the available calculators
//   - example          Print an example request file
//
// # Implementation
//
// The root command loads settings (file, WEALTHCALC_* environment, flags),
// builds a zap logger and a calculation engine with the configured rates
// before any subcommand runs. Reports go to stdout or --output; logs go to
// stderr.
package commands
