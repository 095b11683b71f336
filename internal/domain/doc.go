// Package domain contains the core domain model for train-routes: the route
// graph and the weighted shortest-path search over it.
//
// The domain is transport- and persistence-agnostic: it does not depend on CSV
// parsing, SQLite, net/http, or the filesystem. Infra/adapters map into/from
// these types.
package domain
