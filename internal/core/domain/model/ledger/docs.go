// Package ledger turns item movements of submitted loadings, distributions
// and collections into the sample ledger reports.
//
// Every report is a single pass over the merged, sorted movements with a
// local balance map; nothing is shared between calls.
package ledger
