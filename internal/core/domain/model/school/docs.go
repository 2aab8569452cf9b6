// Package school models the schools that evaluate samples and the customer
// record a school gets once it is ready to order.
package school
