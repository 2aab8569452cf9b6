// Package collection reconciles books coming back from a school against the
// distribution that put them there.
//
// Each line splits what came back into good (Collected), Damaged and Lost.
// Their sum may never exceed the pending quantity snapshot taken when the
// collection was drafted. Submitting posts a return transfer for good books
// and a write-off issue for damaged and lost ones, and feeds the combined
// quantity to the distribution; cancelling undoes all three.
package collection
