// Package unroll builds the check-AIG time copies each obligation needs
// : one witness+model copy for reset/property, two disjoint copies for
// transition, two witness-only copies for step, and three witness copies
// (plus, optionally, two witness+model copies) for liveness. No copy shares latch state
// with any other; a latch's "next" is simply whatever combinational
// expression its AIG defines at that time step.
package unroll
