// Package site provides the Site aggregate for mailroom locations.
//
// A Site owns a set of lockers and carries totalLockers, a denormalized
// counter of how many lockers are provisioned there. The counter trades
// strict accuracy for cheap reads: it is adjusted incrementally by the
// capacity ledger when lockers are created or removed and is repaired by a
// periodic reconciliation job, never recomputed from a scan on the read path.
package site
