// Package loading implements the first stage of the sample cycle: moving
// books from a central warehouse onto a vehicle.
//
// A Loading is edited as a draft, checked with ValidateDraft (which may
// return availability warnings), submitted once its Material Transfer has
// been posted and optionally cancelled, which reverses that transfer. While
// submitted, the business status can be switched between Loaded, In Transit
// and Returned to follow the van.
package loading
