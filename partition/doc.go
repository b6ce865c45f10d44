// Package partition divides the rows of a matrix among independent workers.
//
// ComputeRange assigns worker id of N the contiguous half-open range of rows it
// owns: the first R%N workers take R/N+1 rows and the rest take R/N, laid out in
// worker order. Every row belongs to exactly one worker, so workers never need
// to coordinate.
//
// Plan returns all N ranges at once, which is handy for launching workers.
package partition
