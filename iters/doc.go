// Package iters provides lazy counterparts of the collection/slices helpers.
//
// Every function returns an iterator that does no work until ranged over and
// stops pulling from its source as soon as the consumer stops.
package iters
