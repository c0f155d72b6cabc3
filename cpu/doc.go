// Package cpu implements the execution engine for the 16-bit toy CPU.
//
// The CPU has a 64K word memory, a program counter (PC), four 16-bit
// general-purpose registers (R0-R3) and a zero flag set by ADD. Program
// images are little-endian byte streams as produced by package asm, loaded
// at a word address.
package cpu
