// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm is a two pass assembler for the 16-bit toy CPU described by
// package isa.
//
// Source is line oriented. A line holds an optional label, an instruction
// or directive, and its operands, with everything after ';' ignored:
//
//	loop:   ADD R0, #1      ; increment
//	        JZ loop
//	        .org 0x9000
//	data:   .word 0x1234
//
// The first pass assigns a word address to every line and builds the label
// table; the second encodes each line at its assigned address, so forward
// and backward references resolve identically. Output is the emitted words
// in source order, serialized little-endian.
package asm
