// Package catalog implements the in-memory filter/sort pipeline over show and
// performance collections fetched from the HonkingVersion API.
//
// Everything here is pure, synchronous computation: given the same collection
// and the same [Selection] or [SortOption], the output is identical. The UI
// recomputes listings on every state change rather than caching them.
//
// The pipeline has three stages:
//  1. [DeriveFacets] : filter option lists (years, decades, venue types)
//     derived from the collection alone
//  2. [FilterShows] / [FilterPerformances] : conjunction of active predicates
//  3. [SortPerformances] : stable total order over a closed key set
package catalog
