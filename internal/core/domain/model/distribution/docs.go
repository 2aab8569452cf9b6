// Package distribution models the hand-over of sample books from a vehicle
// to a school and the running record of what came back.
//
// A Distribution is created as a draft, validated against the vehicle stock
// and submitted, which posts a Material Transfer into the field warehouse.
// Collections then report signed deltas through UpdateCollection, and the
// overall Status follows from the totals through DeriveStatus.
package distribution
