// Package pendulum is the chaotic sample source: a double pendulum
// integrated from a set of physical parameters, sampled at evenly spaced
// instants, and reported as the Cartesian positions of both masses.
package pendulum
