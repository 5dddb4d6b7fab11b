// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters):
//
//   - IndexService: full rebuild / incremental catalog maintenance
//   - RankService: query normalization and multi-factor ranking
//   - ActionService: structured open/list file actions
//   - SelectionSession: the disambiguation state machine
package services
