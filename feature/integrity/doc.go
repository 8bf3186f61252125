// Package integrity checks the infrastructure the engine depends on.
//
// # Checks Provided
//
//   - Structure: Checks that the desired-state and snapshot prefixes exist in the bucket.
//   - Store: Checks that the graph and registry tables exist with every column the engine uses.
//   - Orphans: Lists schema attributes no schema type owns, such as those left by an interrupted removal.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/store : Runs store schema check.
//   - GET /integrity/orphans : Runs orphan check (supports ?fix=true, which soft-deletes the orphans).
package integrity
